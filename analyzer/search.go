package analyzer

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// FindSymbols returns every named node whose text equals name, anywhere in
// the file. Context carries the first line of the parent node's text, which
// usually reads as the statement the occurrence sits in.
func (a *FileAnalyzer) FindSymbols(name string) []SymbolRef {
	var out []SymbolRef
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if a.text(n) == name {
			out = append(out, SymbolRef{
				Name:     name,
				NodeType: n.Type(),
				Context:  a.symbolContext(n),
				Location: a.location(n),
			})
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(a.tree.RootNode())
	return out
}

func (a *FileAnalyzer) symbolContext(n *sitter.Node) string {
	parent := n.Parent()
	if parent == nil {
		return a.text(n)
	}
	context := a.text(parent)
	if idx := strings.IndexByte(context, '\n'); idx >= 0 {
		context = context[:idx]
	}
	return strings.TrimSpace(context)
}
