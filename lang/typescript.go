package lang

import "github.com/smacker/go-tree-sitter/typescript/typescript"

func typescriptLanguage() *Language {
	return &Language{
		id:         TypeScript,
		extensions: []string{".ts"},
		grammar:    typescript.GetLanguage(),
		patterns:   typescriptPatterns(),
	}
}

// typescriptPatterns is shared by the typescript and tsx grammars, which
// expose identical node shapes for everything the extraction kinds touch.
func typescriptPatterns() Patterns {
	return Patterns{
		Function: `[(function_declaration name: (identifier) @name) (method_definition name: (property_identifier) @name) (function_expression name: (identifier) @name)] @function`,
		Class:    `[(class_declaration name: (type_identifier) @name) (interface_declaration name: (type_identifier) @name)] @class`,
		Call:     `[(call_expression function: (identifier) @callee) (call_expression function: (member_expression object: (_) @object property: (property_identifier) @method))] @call`,
		Import:   `(import_statement source: (string) @module) @import`,
		Variable: `[(variable_declarator name: (identifier) @name) (assignment_expression left: (identifier) @name)] @declaration`,
		String:   `[(string) (template_string)] @string`,
		Field:    `(class_body (public_field_definition name: (property_identifier) @name type: (type_annotation)? @type)) @field`,
	}
}
