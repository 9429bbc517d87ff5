package report

import (
	"github.com/treescope/treescope/analyzer"
	"github.com/treescope/treescope/lang"
	"github.com/treescope/treescope/project"
)

// Client runs analysis operations and shapes their results. It is the one
// boundary where internal errors and panics become Failure envelopes; the
// CLI and MCP server never see a raw panic from a grammar or a query.
type Client struct {
	registry *lang.Registry
	opts     project.Options
}

// NewClient returns a client over the given registry and scan options.
func NewClient(reg *lang.Registry, opts project.Options) *Client {
	return &Client{registry: reg, opts: opts}
}

// Registry exposes the language registry, mainly for capability listings.
func (c *Client) Registry() *lang.Registry { return c.registry }

func (c *Client) run(fn func() any) (result any) {
	defer func() {
		if r := recover(); r != nil {
			result = Errorf("internal error: %v", r)
		}
	}()
	return fn()
}

func (c *Client) open(path string) (*project.Project, Summary, *Failure) {
	p, err := project.New(c.registry, path, c.opts)
	if err != nil {
		f := Failure{Error: err.Error()}
		return nil, Summary{}, &f
	}
	sum := Summary{
		Path:          path,
		PathType:      string(p.PathType()),
		FilesSearched: p.FilesSearched(),
	}
	if p.PathType() == project.PathTypeFile {
		if id, ok := c.registry.Detect(path); ok {
			sum.Language = string(id)
		}
	}
	return p, sum, nil
}

// Functions lists function definitions under path.
func (c *Client) Functions(path string) any {
	return c.run(func() any {
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		fns := p.Functions()
		if fns == nil {
			fns = []analyzer.FunctionInfo{}
		}
		// Listings stay lean; Definition returns the full body.
		for i := range fns {
			fns[i].Body = ""
		}
		sum.Count = len(fns)
		return FunctionsResult{Summary: sum, Functions: fns}
	})
}

// Classes lists class-like definitions under path.
func (c *Client) Classes(path string) any {
	return c.run(func() any {
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		classes := p.Classes()
		if classes == nil {
			classes = []analyzer.ClassInfo{}
		}
		sum.Count = len(classes)
		return ClassesResult{Summary: sum, Classes: classes}
	})
}

// Fields lists declared fields under path, optionally restricted to one
// class.
func (c *Client) Fields(path, className string) any {
	return c.run(func() any {
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		fields := p.Fields(className)
		if fields == nil {
			fields = []analyzer.FieldInfo{}
		}
		sum.Count = len(fields)
		return FieldsResult{Summary: sum, Class: className, Fields: fields}
	})
}

// Calls lists call sites under path.
func (c *Client) Calls(path string) any {
	return c.run(func() any {
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		calls := p.Calls()
		if calls == nil {
			calls = []analyzer.CallInfo{}
		}
		sum.Count = len(calls)
		return CallsResult{Summary: sum, Calls: calls}
	})
}

// Imports lists imports under path.
func (c *Client) Imports(path string) any {
	return c.run(func() any {
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		imports := p.Imports()
		if imports == nil {
			imports = []analyzer.ImportInfo{}
		}
		sum.Count = len(imports)
		return ImportsResult{Summary: sum, Imports: imports}
	})
}

// Variables lists variable declarations under path.
func (c *Client) Variables(path string) any {
	return c.run(func() any {
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		vars := p.Variables()
		if vars == nil {
			vars = []analyzer.VariableInfo{}
		}
		sum.Count = len(vars)
		return VariablesResult{Summary: sum, Variables: vars}
	})
}

// Strings lists string literals under path.
func (c *Client) Strings(path string) any {
	return c.run(func() any {
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		strs := p.Strings()
		if strs == nil {
			strs = []analyzer.StringLiteral{}
		}
		sum.Count = len(strs)
		return StringsResult{Summary: sum, Strings: strs}
	})
}

// CallGraph maps callers to their distinct callees under path.
func (c *Client) CallGraph(path string) any {
	return c.run(func() any {
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		graph := p.CallGraph()
		sum.Count = len(graph)
		return CallGraphResult{Summary: sum, CallGraph: graph}
	})
}

// ReverseCallGraph maps callees to their distinct callers under path.
func (c *Client) ReverseCallGraph(path string) any {
	return c.run(func() any {
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		graph := p.ReverseCallGraph()
		sum.Count = len(graph)
		return ReverseCallGraphResult{Summary: sum, ReverseCallGraph: graph}
	})
}

// Callers lists the distinct callers of a function under path.
func (c *Client) Callers(path, function, className string) any {
	return c.run(func() any {
		if function == "" {
			return Errorf("function name is required")
		}
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		callers := p.Callers(function, className)
		if callers == nil {
			callers = []analyzer.CallerRef{}
		}
		sum.Count = len(callers)
		return CallersResult{Summary: sum, Function: function, Class: className, Callers: callers}
	})
}

// Callees lists the distinct callees reached from a function under path.
func (c *Client) Callees(path, function, className string) any {
	return c.run(func() any {
		if function == "" {
			return Errorf("function name is required")
		}
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		callees := p.Callees(function, className)
		if callees == nil {
			callees = []analyzer.CalleeRef{}
		}
		sum.Count = len(callees)
		return CalleesResult{Summary: sum, Function: function, Class: className, Callees: callees}
	})
}

// References lists every occurrence of a symbol under path.
func (c *Client) References(path, symbol string) any {
	return c.run(func() any {
		if symbol == "" {
			return Errorf("symbol name is required")
		}
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		refs := p.FindSymbols(symbol)
		if refs == nil {
			refs = []analyzer.SymbolRef{}
		}
		sum.Count = len(refs)
		return ReferencesResult{Summary: sum, Symbol: symbol, References: refs}
	})
}

// Definition returns the first definition of a function under path.
func (c *Client) Definition(path, function string) any {
	return c.run(func() any {
		if function == "" {
			return Errorf("function name is required")
		}
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		def, ok := p.FunctionDefinition(function)
		if !ok {
			return Errorf("function not found: %s", function)
		}
		sum.Count = 1
		return DefinitionResult{Summary: sum, Function: function, Definition: def}
	})
}

// FunctionVariables lists the variables declared inside a function under
// path.
func (c *Client) FunctionVariables(path, function, className string) any {
	return c.run(func() any {
		if function == "" {
			return Errorf("function name is required")
		}
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		vars := p.FunctionVariables(function, className)
		if vars == nil {
			vars = []analyzer.VariableInfo{}
		}
		sum.Count = len(vars)
		return FunctionVariablesResult{Summary: sum, Function: function, Class: className, Variables: vars}
	})
}

// FunctionStrings lists the string literals inside a function under path.
func (c *Client) FunctionStrings(path, function, className string) any {
	return c.run(func() any {
		if function == "" {
			return Errorf("function name is required")
		}
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		strs := p.FunctionStrings(function, className)
		if strs == nil {
			strs = []analyzer.StringLiteral{}
		}
		sum.Count = len(strs)
		return FunctionStringsResult{Summary: sum, Function: function, Class: className, Strings: strs}
	})
}

// SuperClasses lists the declared supertypes of a class under path.
func (c *Client) SuperClasses(path, className string) any {
	return c.run(func() any {
		if className == "" {
			return Errorf("class name is required")
		}
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		supers, ok := p.SuperClasses(className)
		if !ok {
			return Errorf("class not found: %s", className)
		}
		sum.Count = len(supers)
		return SuperClassesResult{Summary: sum, Class: className, SuperClasses: supers}
	})
}

// SubClasses lists every class declaring className as a supertype under
// path.
func (c *Client) SubClasses(path, className string) any {
	return c.run(func() any {
		if className == "" {
			return Errorf("class name is required")
		}
		p, sum, fail := c.open(path)
		if fail != nil {
			return *fail
		}
		subs := p.SubClasses(className)
		if subs == nil {
			subs = []analyzer.ClassInfo{}
		}
		sum.Count = len(subs)
		return SubClassesResult{Summary: sum, Class: className, SubClasses: subs}
	})
}
