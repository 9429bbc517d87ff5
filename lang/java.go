package lang

import "github.com/smacker/go-tree-sitter/java"

func javaLanguage() *Language {
	return &Language{
		id:         Java,
		extensions: []string{".java"},
		grammar:    java.GetLanguage(),
		patterns: Patterns{
			Function: `[(method_declaration name: (identifier) @name) (constructor_declaration name: (identifier) @name)] @function`,
			Class:    `[(class_declaration name: (identifier) @name) (interface_declaration name: (identifier) @name)] @class`,
			Call:     `[(method_invocation name: (identifier) @callee) (object_creation_expression type: (_) @callee)] @call`,
			Import:   `(import_declaration (scoped_identifier) @module) @import`,
			Variable: `(variable_declarator name: (identifier) @name) @declaration`,
			String:   `(string_literal) @string`,
			Field:    `(field_declaration type: (_) @type declarator: (variable_declarator name: (identifier) @name)) @field`,
		},
	}
}
