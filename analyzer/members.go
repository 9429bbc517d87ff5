package analyzer

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/treescope/treescope/lang"
)

var methodDefTypes = map[string]bool{
	"function_definition":     true,
	"method_definition":       true,
	"method_declaration":      true,
	"constructor_declaration": true,
}

// classMethods collects the names of method definitions directly owned by
// classNode. The walk descends through wrapper nodes (bodies, decorated
// definitions) but stops at each method so that functions nested inside
// method bodies are not picked up.
func (a *FileAnalyzer) classMethods(classNode *sitter.Node) []string {
	methods := []string{}
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if methodDefTypes[child.Type()] {
				if name := a.identifierChild(child); name != "" {
					methods = append(methods, name)
				}
				continue
			}
			walk(child)
		}
	}
	walk(classNode)
	return methods
}

// superClasses returns the names a class-like definition declares as its
// supertypes. Extraction patterns stay declarative for everything else, but
// supertype syntax differs enough per grammar that each language gets its
// own structural reader.
func (a *FileAnalyzer) superClasses(classNode *sitter.Node) []string {
	switch a.language.ID() {
	case lang.Python:
		return a.pythonBases(classNode)
	case lang.JavaScript:
		return a.jsHeritage(classNode)
	case lang.TypeScript, lang.TSX:
		return a.tsHeritage(classNode)
	case lang.Java:
		return a.javaSupertypes(classNode)
	case lang.Go:
		return a.goEmbedded(classNode)
	}
	return nil
}

// pythonBases reads the argument list of "class C(Base, pkg.Other):".
func (a *FileAnalyzer) pythonBases(classNode *sitter.Node) []string {
	args := classNode.ChildByFieldName("superclasses")
	if args == nil {
		return nil
	}
	var supers []string
	for i := 0; i < int(args.NamedChildCount()); i++ {
		child := args.NamedChild(i)
		switch child.Type() {
		case "identifier", "attribute":
			supers = append(supers, a.text(child))
		}
	}
	return supers
}

// jsHeritage reads the "extends" expression of a JavaScript class.
func (a *FileAnalyzer) jsHeritage(classNode *sitter.Node) []string {
	var supers []string
	for i := 0; i < int(classNode.NamedChildCount()); i++ {
		child := classNode.NamedChild(i)
		if child.Type() != "class_heritage" {
			continue
		}
		for j := 0; j < int(child.NamedChildCount()); j++ {
			expr := child.NamedChild(j)
			switch expr.Type() {
			case "identifier", "member_expression":
				supers = append(supers, a.text(expr))
			}
		}
	}
	return supers
}

// tsHeritage reads extends and implements clauses of TypeScript classes and
// the extends clause of interfaces. Extended and implemented names are
// merged into one list, in declaration order.
func (a *FileAnalyzer) tsHeritage(classNode *sitter.Node) []string {
	var supers []string
	for i := 0; i < int(classNode.NamedChildCount()); i++ {
		child := classNode.NamedChild(i)
		switch child.Type() {
		case "class_heritage":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				clause := child.NamedChild(j)
				switch clause.Type() {
				case "extends_clause", "implements_clause":
					supers = append(supers, a.typeNames(clause)...)
				}
			}
		case "extends_type_clause":
			supers = append(supers, a.typeNames(child)...)
		}
	}
	return supers
}

// typeNames extracts bare type names from a heritage clause, unwrapping
// generic instantiations down to the named type.
func (a *FileAnalyzer) typeNames(clause *sitter.Node) []string {
	var names []string
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		child := clause.NamedChild(i)
		switch child.Type() {
		case "identifier", "type_identifier", "member_expression", "nested_type_identifier":
			names = append(names, a.text(child))
		case "generic_type":
			if name := child.ChildByFieldName("name"); name != nil {
				names = append(names, a.text(name))
			}
		}
	}
	return names
}

// javaSupertypes merges the superclass with implemented and extended
// interfaces of a Java class or interface declaration.
func (a *FileAnalyzer) javaSupertypes(classNode *sitter.Node) []string {
	var supers []string
	for i := 0; i < int(classNode.NamedChildCount()); i++ {
		child := classNode.NamedChild(i)
		switch child.Type() {
		case "superclass":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				supers = append(supers, a.text(child.NamedChild(j)))
			}
		case "super_interfaces", "extends_interfaces":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				list := child.NamedChild(j)
				if list.Type() != "type_list" {
					continue
				}
				for k := 0; k < int(list.NamedChildCount()); k++ {
					supers = append(supers, a.text(list.NamedChild(k)))
				}
			}
		}
	}
	return supers
}

// goEmbedded treats embedded struct fields and embedded interfaces as the
// supertypes of a Go type. Pointer embeds are reported without the leading
// star.
func (a *FileAnalyzer) goEmbedded(classNode *sitter.Node) []string {
	spec := classNode
	if spec.Type() == "type_declaration" {
		spec = nil
		for i := 0; i < int(classNode.NamedChildCount()); i++ {
			if child := classNode.NamedChild(i); child.Type() == "type_spec" {
				spec = child
				break
			}
		}
		if spec == nil {
			return nil
		}
	}
	typeNode := spec.ChildByFieldName("type")
	if typeNode == nil {
		return nil
	}

	var supers []string
	switch typeNode.Type() {
	case "struct_type":
		for i := 0; i < int(typeNode.NamedChildCount()); i++ {
			list := typeNode.NamedChild(i)
			if list.Type() != "field_declaration_list" {
				continue
			}
			for j := 0; j < int(list.NamedChildCount()); j++ {
				field := list.NamedChild(j)
				if field.Type() != "field_declaration" || field.ChildByFieldName("name") != nil {
					continue
				}
				if t := field.ChildByFieldName("type"); t != nil {
					supers = append(supers, strings.TrimPrefix(a.text(t), "*"))
				}
			}
		}
	case "interface_type":
		supers = append(supers, a.goInterfaceEmbeds(typeNode)...)
	}
	return supers
}

func (a *FileAnalyzer) goInterfaceEmbeds(n *sitter.Node) []string {
	var supers []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "type_identifier", "qualified_type":
			supers = append(supers, a.text(child))
		case "type_elem", "constraint_elem":
			supers = append(supers, a.goInterfaceEmbeds(child)...)
		}
	}
	return supers
}
