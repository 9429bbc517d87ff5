package lang

import "github.com/smacker/go-tree-sitter/python"

func pythonLanguage() *Language {
	return &Language{
		id:         Python,
		extensions: []string{".py", ".pyw", ".pyi"},
		grammar:    python.GetLanguage(),
		patterns: Patterns{
			Function: `(function_definition name: (identifier) @name) @function`,
			Class:    `(class_definition name: (identifier) @name) @class`,
			Call:     `[(call function: (identifier) @callee) (call function: (attribute object: (_) @object attribute: (identifier) @method))] @call`,
			Import:   `[(import_statement name: (dotted_name) @module) (import_from_statement module_name: (dotted_name) @module) (import_from_statement module_name: (relative_import) @module)] @import`,
			Variable: `(assignment left: (identifier) @name) @assignment`,
			String:   `(string) @string`,
			Field:    `(class_definition body: (block (expression_statement (assignment left: (identifier) @name type: (type)? @type)))) @class`,
		},
	}
}
