// Package report shapes analysis results into the envelopes the CLI and MCP
// server emit. Every operation returns either a typed success envelope or a
// Failure; callers serialize whichever they get.
package report

import (
	"fmt"

	"github.com/treescope/treescope/analyzer"
	"github.com/treescope/treescope/project"
)

// Failure is the error envelope. It is the only shape an operation returns
// on failure.
type Failure struct {
	Error string `json:"error"`
}

// Errorf builds a Failure from a format string.
func Errorf(format string, args ...any) Failure {
	return Failure{Error: fmt.Sprintf(format, args...)}
}

// Summary is the header every success envelope carries.
type Summary struct {
	Path          string `json:"path"`
	PathType      string `json:"path_type"`
	Language      string `json:"language,omitempty"`
	FilesSearched int    `json:"files_searched"`
	Count         int    `json:"count"`
}

type FunctionsResult struct {
	Summary
	Functions []analyzer.FunctionInfo `json:"functions"`
}

type ClassesResult struct {
	Summary
	Classes []analyzer.ClassInfo `json:"classes"`
}

type FieldsResult struct {
	Summary
	Class  string               `json:"class,omitempty"`
	Fields []analyzer.FieldInfo `json:"fields"`
}

type CallsResult struct {
	Summary
	Calls []analyzer.CallInfo `json:"calls"`
}

type ImportsResult struct {
	Summary
	Imports []analyzer.ImportInfo `json:"imports"`
}

type VariablesResult struct {
	Summary
	Variables []analyzer.VariableInfo `json:"variables"`
}

type StringsResult struct {
	Summary
	Strings []analyzer.StringLiteral `json:"strings"`
}

type CallGraphResult struct {
	Summary
	CallGraph map[string][]string `json:"call_graph"`
}

type ReverseCallGraphResult struct {
	Summary
	ReverseCallGraph map[string][]string `json:"reverse_call_graph"`
}

type CallersResult struct {
	Summary
	Function string               `json:"function"`
	Class    string               `json:"class,omitempty"`
	Callers  []analyzer.CallerRef `json:"callers"`
}

type CalleesResult struct {
	Summary
	Function string               `json:"function"`
	Class    string               `json:"class,omitempty"`
	Callees  []analyzer.CalleeRef `json:"callees"`
}

type ReferencesResult struct {
	Summary
	Symbol     string               `json:"symbol"`
	References []analyzer.SymbolRef `json:"references"`
}

type DefinitionResult struct {
	Summary
	Function   string                `json:"function"`
	Definition analyzer.FunctionInfo `json:"definition"`
}

type FunctionVariablesResult struct {
	Summary
	Function  string                  `json:"function"`
	Class     string                  `json:"class,omitempty"`
	Variables []analyzer.VariableInfo `json:"variables"`
}

type FunctionStringsResult struct {
	Summary
	Function string                   `json:"function"`
	Class    string                   `json:"class,omitempty"`
	Strings  []analyzer.StringLiteral `json:"strings"`
}

type SuperClassesResult struct {
	Summary
	Class        string             `json:"class"`
	SuperClasses []project.ClassRef `json:"super_classes"`
}

type SubClassesResult struct {
	Summary
	Class      string               `json:"class"`
	SubClasses []analyzer.ClassInfo `json:"sub_classes"`
}
