package lang

import "github.com/smacker/go-tree-sitter/golang"

func goLanguage() *Language {
	return &Language{
		id:         Go,
		extensions: []string{".go"},
		grammar:    golang.GetLanguage(),
		patterns: Patterns{
			Function: `[(function_declaration name: (identifier) @name) (method_declaration name: (field_identifier) @name)] @function`,
			Class:    `(type_declaration (type_spec name: (type_identifier) @name type: [(struct_type) (interface_type)])) @class`,
			Call:     `[(call_expression function: (identifier) @callee) (call_expression function: (selector_expression operand: (_) @object field: (field_identifier) @method))] @call`,
			Import:   `(import_spec path: (interpreted_string_literal) @module) @import`,
			Variable: `[(short_var_declaration left: (expression_list (identifier) @name)) (var_spec name: (identifier) @name)] @declaration`,
			String:   `[(interpreted_string_literal) (raw_string_literal)] @string`,
			Field:    `(field_declaration_list (field_declaration name: (field_identifier) @name type: (_) @type)) @field`,
		},
	}
}
