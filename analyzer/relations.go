package analyzer

// FunctionsByName returns every function matching name, optionally
// restricted to methods of className.
func (a *FileAnalyzer) FunctionsByName(name, className string) []FunctionInfo {
	var out []FunctionInfo
	for _, fn := range a.Functions() {
		if fn.Name != name {
			continue
		}
		if className != "" && fn.ClassName != className {
			continue
		}
		out = append(out, fn)
	}
	return out
}

// FunctionByName returns the first function named name, in source order.
func (a *FileAnalyzer) FunctionByName(name string) (FunctionInfo, bool) {
	fns := a.FunctionsByName(name, "")
	if len(fns) == 0 {
		return FunctionInfo{}, false
	}
	return fns[0], true
}

// FunctionCallers returns the callers of name, one entry per distinct
// caller. className qualifies the lookup and is echoed back on each entry;
// it does not structurally restrict matches, since a call site alone does
// not reveal the receiver's class.
func (a *FileAnalyzer) FunctionCallers(name, className string) []CallerRef {
	seen := make(map[string]bool)
	var out []CallerRef
	for _, call := range a.Calls() {
		if call.Callee != name {
			continue
		}
		key := call.Caller + "\x00" + className
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, CallerRef{
			Caller:      call.Caller,
			TargetClass: className,
			File:        call.File,
			Line:        call.StartLine,
		})
	}
	return out
}

// FunctionCallees returns the calls made from inside functions matching
// name (and className, when given), one entry per distinct callee.
func (a *FileAnalyzer) FunctionCallees(name, className string) []CalleeRef {
	targets := a.FunctionsByName(name, className)
	if len(targets) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var out []CalleeRef
	for _, call := range a.Calls() {
		if call.Caller != name {
			continue
		}
		var owner string
		for _, fn := range targets {
			if call.StartLine >= fn.StartLine && call.StartLine <= fn.EndLine {
				owner = fn.ClassName
				break
			}
		}
		qualified := call.Qualified()
		key := qualified + "\x00" + owner
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, CalleeRef{
			Callee:    qualified,
			ClassName: owner,
			File:      call.File,
			Line:      call.StartLine,
		})
	}
	return out
}

// FunctionVariables returns the variables declared inside functions
// matching name and className.
func (a *FileAnalyzer) FunctionVariables(name, className string) []VariableInfo {
	targets := a.FunctionsByName(name, className)
	var out []VariableInfo
	for _, v := range a.Variables() {
		if v.Scope != name {
			continue
		}
		for _, fn := range targets {
			if v.StartLine >= fn.StartLine && v.StartLine <= fn.EndLine {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// FunctionStrings returns the string literals appearing inside functions
// matching name and className.
func (a *FileAnalyzer) FunctionStrings(name, className string) []StringLiteral {
	targets := a.FunctionsByName(name, className)
	var out []StringLiteral
	for _, s := range a.Strings() {
		for _, fn := range targets {
			if s.StartLine >= fn.StartLine && s.EndLine <= fn.EndLine {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// CallGraph maps each caller to the distinct callees it reaches, in first
// occurrence order. Receiver calls appear qualified as "object.callee".
func (a *FileAnalyzer) CallGraph() map[string][]string {
	graph := make(map[string][]string)
	seen := make(map[string]bool)
	for _, call := range a.Calls() {
		qualified := call.Qualified()
		key := call.Caller + "\x00" + qualified
		if seen[key] {
			continue
		}
		seen[key] = true
		graph[call.Caller] = append(graph[call.Caller], qualified)
	}
	return graph
}

// ReverseCallGraph maps each callee name to the distinct callers that reach
// it. Callees are keyed by bare name so that "obj.frob()" and "frob()" land
// under the same entry.
func (a *FileAnalyzer) ReverseCallGraph() map[string][]string {
	graph := make(map[string][]string)
	seen := make(map[string]bool)
	for _, call := range a.Calls() {
		key := call.Callee + "\x00" + call.Caller
		if seen[key] {
			continue
		}
		seen[key] = true
		graph[call.Callee] = append(graph[call.Callee], call.Caller)
	}
	return graph
}
