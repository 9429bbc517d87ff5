package project

import (
	"sort"

	"github.com/treescope/treescope/analyzer"
)

// ClassRef names a supertype or subtype, resolved against the project's
// class map when a definition with that name exists.
type ClassRef struct {
	Name      string `json:"name"`
	File      string `json:"file,omitempty"`
	StartLine int    `json:"start_line,omitempty"`
	EndLine   int    `json:"end_line,omitempty"`
	Resolved  bool   `json:"resolved"`
}

// FunctionsByName returns every function matching name (and className, when
// given) across the project.
func (p *Project) FunctionsByName(name, className string) []analyzer.FunctionInfo {
	var out []analyzer.FunctionInfo
	p.each(func(fa *analyzer.FileAnalyzer) {
		out = append(out, fa.FunctionsByName(name, className)...)
	})
	return out
}

// FunctionDefinition returns the first definition of name in file-sorted
// order.
func (p *Project) FunctionDefinition(name string) (analyzer.FunctionInfo, bool) {
	fns := p.FunctionsByName(name, "")
	if len(fns) == 0 {
		return analyzer.FunctionInfo{}, false
	}
	return fns[0], true
}

// Callers returns the distinct callers of name across the project, sorted
// by file then line.
func (p *Project) Callers(name, className string) []analyzer.CallerRef {
	var out []analyzer.CallerRef
	p.each(func(fa *analyzer.FileAnalyzer) {
		out = append(out, fa.FunctionCallers(name, className)...)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		return out[i].Line < out[j].Line
	})
	return out
}

// Callees returns the distinct callees reached from functions matching name
// across the project, sorted by file then line.
func (p *Project) Callees(name, className string) []analyzer.CalleeRef {
	var out []analyzer.CalleeRef
	p.each(func(fa *analyzer.FileAnalyzer) {
		out = append(out, fa.FunctionCallees(name, className)...)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		return out[i].Line < out[j].Line
	})
	return out
}

// FunctionVariables returns the variables declared inside functions matching
// name, sorted by file then line.
func (p *Project) FunctionVariables(name, className string) []analyzer.VariableInfo {
	var out []analyzer.VariableInfo
	p.each(func(fa *analyzer.FileAnalyzer) {
		out = append(out, fa.FunctionVariables(name, className)...)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		return out[i].StartLine < out[j].StartLine
	})
	return out
}

// FunctionStrings returns the string literals inside functions matching
// name, sorted by file then line.
func (p *Project) FunctionStrings(name, className string) []analyzer.StringLiteral {
	var out []analyzer.StringLiteral
	p.each(func(fa *analyzer.FileAnalyzer) {
		out = append(out, fa.FunctionStrings(name, className)...)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		return out[i].StartLine < out[j].StartLine
	})
	return out
}

// ClassByName returns the first class named name in file-sorted order.
func (p *Project) ClassByName(name string) (analyzer.ClassInfo, bool) {
	for _, cls := range p.Classes() {
		if cls.Name == name {
			return cls, true
		}
	}
	return analyzer.ClassInfo{}, false
}

// SuperClasses returns the declared supertypes of name, each resolved to its
// definition when one exists in the project.
func (p *Project) SuperClasses(name string) ([]ClassRef, bool) {
	classes := p.Classes()
	byName := make(map[string]analyzer.ClassInfo, len(classes))
	for _, cls := range classes {
		if _, ok := byName[cls.Name]; !ok {
			byName[cls.Name] = cls
		}
	}

	target, ok := byName[name]
	if !ok {
		return nil, false
	}

	refs := []ClassRef{}
	for _, super := range target.SuperClasses {
		ref := ClassRef{Name: super}
		if def, ok := byName[super]; ok {
			ref.File = def.File
			ref.StartLine = def.StartLine
			ref.EndLine = def.EndLine
			ref.Resolved = true
		}
		refs = append(refs, ref)
	}
	return refs, true
}

// SubClasses returns every class in the project that declares name as a
// supertype.
func (p *Project) SubClasses(name string) []analyzer.ClassInfo {
	var out []analyzer.ClassInfo
	for _, cls := range p.Classes() {
		for _, super := range cls.SuperClasses {
			if super == name {
				out = append(out, cls)
				break
			}
		}
	}
	return out
}

// CallGraph merges the per-file call graphs into one caller-to-callees map
// with distinct edges.
func (p *Project) CallGraph() map[string][]string {
	graph := make(map[string][]string)
	seen := make(map[string]bool)
	p.each(func(fa *analyzer.FileAnalyzer) {
		for caller, callees := range fa.CallGraph() {
			for _, callee := range callees {
				key := caller + "\x00" + callee
				if seen[key] {
					continue
				}
				seen[key] = true
				graph[caller] = append(graph[caller], callee)
			}
		}
	})
	return graph
}

// ReverseCallGraph merges the per-file reverse call graphs into one
// callee-to-callers map with distinct edges.
func (p *Project) ReverseCallGraph() map[string][]string {
	graph := make(map[string][]string)
	seen := make(map[string]bool)
	p.each(func(fa *analyzer.FileAnalyzer) {
		for callee, callers := range fa.ReverseCallGraph() {
			for _, caller := range callers {
				key := callee + "\x00" + caller
				if seen[key] {
					continue
				}
				seen[key] = true
				graph[callee] = append(graph[callee], caller)
			}
		}
	})
	return graph
}
