// Package lang is the language registry: it maps file extensions to
// languages, holds the per-language extraction patterns, and hands out
// configured parsers. A Registry is immutable after construction; build one
// with NewRegistry and pass it down instead of relying on process-wide state.
package lang

import (
	"path/filepath"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// ID identifies a supported language.
type ID string

const (
	Python     ID = "python"
	JavaScript ID = "javascript"
	TypeScript ID = "typescript"
	TSX        ID = "tsx"
	Java       ID = "java"
	Go         ID = "go"
)

// Patterns holds one declarative tree-sitter pattern per extraction kind.
//
// The contract with the extraction engine is carried entirely by capture
// names: every pattern tags a capture named "name" (or "callee"/"method"/
// "object" for calls, "module" for imports) plus an outer capture for the
// whole defining construct ("function", "class", "call", "import"). A pattern
// that omits an expected capture yields zero entities for that kind, not an
// error.
type Patterns struct {
	Function string
	Class    string
	Call     string
	Import   string
	Variable string
	String   string
	Field    string
}

// Language bundles a grammar with its file extensions and patterns.
type Language struct {
	id         ID
	extensions []string
	grammar    *sitter.Language
	patterns   Patterns
}

func (l *Language) ID() ID                    { return l.id }
func (l *Language) Extensions() []string      { return l.extensions }
func (l *Language) Grammar() *sitter.Language { return l.grammar }
func (l *Language) Patterns() Patterns        { return l.patterns }

// NewParser returns a parser configured for this language's grammar.
func (l *Language) NewParser() *sitter.Parser {
	p := sitter.NewParser()
	p.SetLanguage(l.grammar)
	return p
}

// Registry resolves filenames and identifiers to languages.
type Registry struct {
	byID  map[ID]*Language
	byExt map[string]ID
}

// NewRegistry builds a registry holding every supported language.
func NewRegistry() *Registry {
	r := &Registry{
		byID:  make(map[ID]*Language),
		byExt: make(map[string]ID),
	}
	for _, l := range []*Language{
		pythonLanguage(),
		javascriptLanguage(),
		typescriptLanguage(),
		tsxLanguage(),
		javaLanguage(),
		goLanguage(),
	} {
		r.byID[l.id] = l
		for _, ext := range l.extensions {
			r.byExt[ext] = l.id
		}
	}
	return r
}

// Detect returns the language for a filename's extension. The second return
// is false for unsupported extensions; callers at aggregation scope treat
// that as "skip this file".
func (r *Registry) Detect(filename string) (ID, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	id, ok := r.byExt[ext]
	return id, ok
}

// Get returns a language by identifier.
func (r *Registry) Get(id ID) (*Language, bool) {
	l, ok := r.byID[id]
	return l, ok
}

// Supported reports whether a filename has a supported extension.
func (r *Registry) Supported(filename string) bool {
	_, ok := r.Detect(filename)
	return ok
}

// Extensions returns every supported extension, sorted.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// IDs returns every registered language identifier, sorted.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
