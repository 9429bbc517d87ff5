package analyzer

// ModuleScope is the caller/scope name assigned to code that runs outside
// any function body.
const ModuleScope = "<module>"

// Location pins an extracted entity to a file and a 1-based line range.
type Location struct {
	File      string `json:"file"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
}

// FunctionInfo describes one function or method definition. Body holds the
// verbatim source of the defining node.
type FunctionInfo struct {
	Name      string `json:"name"`
	IsMethod  bool   `json:"is_method"`
	ClassName string `json:"class,omitempty"`
	Body      string `json:"body,omitempty"`
	Location
}

// ClassInfo describes one class-like definition together with its direct
// members and declared supertypes.
type ClassInfo struct {
	Name         string      `json:"name"`
	Methods      []string    `json:"methods"`
	Fields       []FieldInfo `json:"fields"`
	SuperClasses []string    `json:"super_classes"`
	Location
}

// FieldInfo describes one declared field of a class-like definition.
type FieldInfo struct {
	Name      string `json:"name"`
	Type      string `json:"type,omitempty"`
	ClassName string `json:"class,omitempty"`
	Location
}

// CallInfo describes one call site. IsMethodCall marks calls routed through
// a receiver expression; Object carries the receiver text when it is
// available, in which case Qualified joins the two.
type CallInfo struct {
	Callee       string `json:"callee"`
	Object       string `json:"object,omitempty"`
	IsMethodCall bool   `json:"is_method_call"`
	Caller       string `json:"caller"`
	Location
}

// Qualified returns "object.callee" when the call has a receiver, otherwise
// just the callee name.
func (c CallInfo) Qualified() string {
	if c.Object != "" {
		return c.Object + "." + c.Callee
	}
	return c.Callee
}

// ImportInfo describes one import statement or clause.
type ImportInfo struct {
	Module string `json:"module"`
	Location
}

// VariableInfo describes one variable declaration and the function scope it
// belongs to. Scope is empty for declarations outside any function.
type VariableInfo struct {
	Name  string `json:"name"`
	Scope string `json:"scope,omitempty"`
	Location
}

// StringLiteral is one string literal, kept verbatim including quotes.
type StringLiteral struct {
	Value string `json:"value"`
	Location
}

// SymbolRef is one occurrence of a named symbol anywhere in a file.
type SymbolRef struct {
	Name     string `json:"name"`
	NodeType string `json:"node_type"`
	Context  string `json:"context"`
	Location
}

// CallerRef is one deduplicated caller of a target function.
type CallerRef struct {
	Caller      string `json:"caller"`
	TargetClass string `json:"target_class,omitempty"`
	File        string `json:"file"`
	Line        int    `json:"line"`
}

// CalleeRef is one deduplicated callee reached from a target function.
type CalleeRef struct {
	Callee    string `json:"callee"`
	ClassName string `json:"class,omitempty"`
	File      string `json:"file"`
	Line      int    `json:"line"`
}
