package analyzer

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Functions returns every function and method definition in the file, in
// source order. A definition counts as a method when it sits inside a named
// class-like scope.
func (a *FileAnalyzer) Functions() []FunctionInfo {
	caps := a.captures(a.language.Patterns().Function)
	names := sortByStart(caps["name"])

	var out []FunctionInfo
	for _, fn := range caps["function"] {
		nameNode := firstWithin(fn, names)
		if nameNode == nil {
			continue
		}
		className := a.enclosingClass(fn)
		out = append(out, FunctionInfo{
			Name:      a.text(nameNode),
			IsMethod:  className != "",
			ClassName: className,
			Body:      a.text(fn),
			Location:  a.location(fn),
		})
	}
	return out
}

// Classes returns every class-like definition with its direct methods,
// fields, and declared supertypes.
func (a *FileAnalyzer) Classes() []ClassInfo {
	caps := a.captures(a.language.Patterns().Class)
	names := sortByStart(caps["name"])
	fields := a.Fields("")

	var out []ClassInfo
	for _, cls := range caps["class"] {
		nameNode := firstWithin(cls, names)
		if nameNode == nil {
			continue
		}
		name := a.text(nameNode)
		info := ClassInfo{
			Name:         name,
			Methods:      a.classMethods(cls),
			Fields:       []FieldInfo{},
			SuperClasses: a.superClasses(cls),
			Location:     a.location(cls),
		}
		for _, f := range fields {
			if f.ClassName == name && f.StartLine >= info.StartLine && f.EndLine <= info.EndLine {
				info.Fields = append(info.Fields, f)
			}
		}
		if info.Methods == nil {
			info.Methods = []string{}
		}
		if info.SuperClasses == nil {
			info.SuperClasses = []string{}
		}
		out = append(out, info)
	}
	return out
}

// Fields returns declared fields, optionally restricted to one class. Field
// locations point at the declared name, not the surrounding declaration
// list, so they stay meaningful for grammars whose field pattern anchors on
// the whole member block.
func (a *FileAnalyzer) Fields(className string) []FieldInfo {
	var out []FieldInfo
	for _, m := range a.matches(a.language.Patterns().Field) {
		var nameNode, typeNode *sitter.Node
		for _, c := range m {
			switch c.name {
			case "name":
				nameNode = c.node
			case "type":
				typeNode = c.node
			}
		}
		if nameNode == nil {
			continue
		}
		owner := a.enclosingClass(nameNode)
		if className != "" && owner != className {
			continue
		}
		f := FieldInfo{
			Name:      a.text(nameNode),
			ClassName: owner,
			Location:  a.location(nameNode),
		}
		if typeNode != nil {
			// TypeScript type annotations include the leading colon.
			f.Type = strings.TrimSpace(strings.TrimPrefix(a.text(typeNode), ":"))
		}
		out = append(out, f)
	}
	return out
}

// Imports returns every import in the file. When the pattern isolates the
// imported module path, surrounding quotes are stripped; otherwise the whole
// import clause text is reported.
func (a *FileAnalyzer) Imports() []ImportInfo {
	var out []ImportInfo
	for _, m := range a.matches(a.language.Patterns().Import) {
		var moduleNode, outer *sitter.Node
		for _, c := range m {
			switch c.name {
			case "module":
				moduleNode = c.node
			case "import":
				outer = c.node
			}
		}
		if outer == nil {
			continue
		}
		module := ""
		if moduleNode != nil {
			module = strings.Trim(a.text(moduleNode), `"'`)
		}
		if module == "" {
			module = a.text(outer)
		}
		out = append(out, ImportInfo{Module: module, Location: a.location(outer)})
	}
	return out
}

// Variables returns every variable declaration with the function scope it
// belongs to. Declarations outside any function carry an empty scope.
func (a *FileAnalyzer) Variables() []VariableInfo {
	caps := a.captures(a.language.Patterns().Variable)

	var out []VariableInfo
	for _, n := range caps["name"] {
		out = append(out, VariableInfo{
			Name:     a.text(n),
			Scope:    a.enclosingFunction(n),
			Location: a.location(n),
		})
	}
	return out
}

// Strings returns every string literal verbatim, quotes included.
func (a *FileAnalyzer) Strings() []StringLiteral {
	caps := a.captures(a.language.Patterns().String)

	var out []StringLiteral
	for _, n := range caps["string"] {
		out = append(out, StringLiteral{Value: a.text(n), Location: a.location(n)})
	}
	return out
}
