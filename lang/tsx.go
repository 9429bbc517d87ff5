package lang

import "github.com/smacker/go-tree-sitter/typescript/tsx"

func tsxLanguage() *Language {
	return &Language{
		id:         TSX,
		extensions: []string{".tsx"},
		grammar:    tsx.GetLanguage(),
		patterns:   typescriptPatterns(),
	}
}
