// Package analyzer is the single-file extraction engine. A FileAnalyzer
// parses one source file with the grammar its extension maps to, then
// answers structural questions about it: definitions, members, call sites,
// imports, variables, string literals, and symbol occurrences. Extraction is
// driven entirely by the declarative patterns the language registry carries;
// nothing here is language-specific except the supertype heuristics in
// members.go.
package analyzer

import (
	"fmt"
	"os"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/treescope/treescope/lang"
)

// FileAnalyzer holds one parsed file. It is cheap to query repeatedly: the
// tree is parsed once and every extraction runs against it.
type FileAnalyzer struct {
	path     string
	language *lang.Language
	source   []byte
	tree     *sitter.Tree
}

// New reads and parses the file at path. The extension must map to a
// registered language; otherwise the error wraps ErrUnsupportedLanguage.
func New(reg *lang.Registry, path string) (*FileAnalyzer, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return NewFromSource(reg, path, source)
}

// NewFromSource parses source as if it were the contents of path. The path
// is used for language detection and for locations in results.
func NewFromSource(reg *lang.Registry, path string, source []byte) (*FileAnalyzer, error) {
	id, ok := reg.Detect(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, filepath.Ext(path))
	}
	language, _ := reg.Get(id)

	p := language.NewParser()
	tree := p.Parse(nil, source)

	return &FileAnalyzer{
		path:     path,
		language: language,
		source:   source,
		tree:     tree,
	}, nil
}

// Path returns the path the analyzer was built from.
func (a *FileAnalyzer) Path() string { return a.path }

// Language returns the detected language identifier.
func (a *FileAnalyzer) Language() lang.ID { return a.language.ID() }

func (a *FileAnalyzer) text(n *sitter.Node) string {
	return n.Content(a.source)
}

func (a *FileAnalyzer) location(n *sitter.Node) Location {
	return Location{
		File:      a.path,
		StartLine: int(n.StartPoint().Row) + 1,
		EndLine:   int(n.EndPoint().Row) + 1,
	}
}
