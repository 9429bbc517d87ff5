package analyzer

import sitter "github.com/smacker/go-tree-sitter"

// Node types that open a function-like scope, across every registered
// grammar.
var functionScopeTypes = map[string]bool{
	"function_definition":       true,
	"async_function_definition": true,
	"function_declaration":      true,
	"method_definition":         true,
	"arrow_function":            true,
	"method_declaration":        true,
	"constructor_declaration":   true,
}

// Node types that open a class-like scope. type_spec covers Go struct and
// interface declarations so that field extraction can resolve an owner.
var classScopeTypes = map[string]bool{
	"class_definition":      true,
	"class_declaration":     true,
	"interface_declaration": true,
	"type_spec":             true,
}

var identifierTypes = map[string]bool{
	"identifier":          true,
	"property_identifier": true,
	"field_identifier":    true,
	"type_identifier":     true,
	"name":                true,
}

// identifierChild returns the text of the defining name of a scope node:
// the "name" field when the grammar exposes one, otherwise the first direct
// identifier-like child.
func (a *FileAnalyzer) identifierChild(n *sitter.Node) string {
	if named := n.ChildByFieldName("name"); named != nil {
		return a.text(named)
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if identifierTypes[child.Type()] {
			return a.text(child)
		}
	}
	return ""
}

// enclosingScope walks ancestors of n looking for the nearest scope whose
// type is in scopeTypes and which has a resolvable name. Anonymous scopes
// (arrow functions without a binding, for one) are stepped over.
func (a *FileAnalyzer) enclosingScope(n *sitter.Node, scopeTypes map[string]bool) string {
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if !scopeTypes[cur.Type()] {
			continue
		}
		if name := a.identifierChild(cur); name != "" {
			return name
		}
	}
	return ""
}

// enclosingFunction returns the name of the nearest named function-like
// ancestor, or "" for module-level code.
func (a *FileAnalyzer) enclosingFunction(n *sitter.Node) string {
	return a.enclosingScope(n, functionScopeTypes)
}

// enclosingClass returns the name of the nearest named class-like ancestor,
// or "" when n is not inside one.
func (a *FileAnalyzer) enclosingClass(n *sitter.Node) string {
	return a.enclosingScope(n, classScopeTypes)
}
