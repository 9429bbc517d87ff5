package lang

import "github.com/smacker/go-tree-sitter/javascript"

func javascriptLanguage() *Language {
	return &Language{
		id:         JavaScript,
		extensions: []string{".js", ".mjs", ".cjs", ".jsx"},
		grammar:    javascript.GetLanguage(),
		patterns: Patterns{
			Function: `[(function_declaration name: (identifier) @name) (method_definition name: (property_identifier) @name) (function_expression name: (identifier) @name)] @function`,
			Class:    `(class_declaration name: (identifier) @name) @class`,
			Call:     `[(call_expression function: (identifier) @callee) (call_expression function: (member_expression object: (_) @object property: (property_identifier) @method))] @call`,
			Import:   `(import_statement source: (string) @module) @import`,
			Variable: `[(variable_declarator name: (identifier) @name) (assignment_expression left: (identifier) @name)] @declaration`,
			String:   `[(string) (template_string)] @string`,
			Field:    `(class_body (field_definition property: (property_identifier) @name)) @field`,
		},
	}
}
