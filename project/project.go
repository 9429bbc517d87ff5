package project

import (
	"io"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/treescope/treescope/analyzer"
	"github.com/treescope/treescope/lang"
)

// Options tunes file discovery and analysis.
type Options struct {
	// Jobs bounds the analysis worker pool. Zero means NumCPU.
	Jobs int
	// MaxFileBytes drops larger files during glob and directory discovery.
	// Zero disables the limit.
	MaxFileBytes int64
	// IgnoreDirs replaces the default directory skip list when non-empty.
	IgnoreDirs []string
	// Logger receives per-file failure diagnostics. Nil discards them.
	Logger *logrus.Logger
}

func (o Options) ignoreDirs() map[string]struct{} {
	if len(o.IgnoreDirs) == 0 {
		return defaultIgnoreDirs()
	}
	ignore := make(map[string]struct{}, len(o.IgnoreDirs))
	for _, d := range o.IgnoreDirs {
		ignore[d] = struct{}{}
	}
	return ignore
}

// Project is the aggregation scope for one request path. File discovery
// happens at construction; parsing is deferred to the first query and shared
// by all subsequent ones.
type Project struct {
	path     string
	pathType PathType
	registry *lang.Registry
	files    []string
	opts     Options
	log      *logrus.Logger

	once      sync.Once
	analyzers map[string]*analyzer.FileAnalyzer
	failed    map[string]error
}

// New discovers the files covered by path and returns a project over them.
// For an explicit file the path must exist and be supported; globs and
// directories simply yield what matches.
func New(reg *lang.Registry, path string, opts Options) (*Project, error) {
	pathType := DetectPathType(path)
	files, err := findFiles(reg, path, pathType, opts)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	return &Project{
		path:      path,
		pathType:  pathType,
		registry:  reg,
		files:     files,
		opts:      opts,
		log:       log,
		analyzers: make(map[string]*analyzer.FileAnalyzer),
		failed:    make(map[string]error),
	}, nil
}

// Path returns the request path the project was built from.
func (p *Project) Path() string { return p.path }

// PathType returns how the request path was classified.
func (p *Project) PathType() PathType { return p.pathType }

// Files returns the discovered file list, sorted.
func (p *Project) Files() []string { return p.files }

// FilesSearched returns how many files were successfully parsed. Files that
// disappeared or failed between discovery and analysis are not counted.
func (p *Project) FilesSearched() int {
	p.warm()
	return len(p.analyzers)
}

func (p *Project) warm() {
	p.once.Do(func() {
		jobs := p.opts.Jobs
		if jobs <= 0 {
			jobs = runtime.NumCPU()
		}
		for _, res := range runAnalyzeWorkers(p.registry, p.files, jobs) {
			if res.err != nil {
				p.log.WithError(res.err).WithField("file", res.path).Debug("excluding file from analysis")
				p.failed[res.path] = res.err
				continue
			}
			p.analyzers[res.path] = res.fa
		}
	})
}

// each visits the parsed analyzers in file-sorted order.
func (p *Project) each(fn func(*analyzer.FileAnalyzer)) {
	p.warm()
	for _, f := range p.files {
		if fa, ok := p.analyzers[f]; ok {
			fn(fa)
		}
	}
}

// Functions returns every function definition across the project.
func (p *Project) Functions() []analyzer.FunctionInfo {
	var out []analyzer.FunctionInfo
	p.each(func(fa *analyzer.FileAnalyzer) {
		out = append(out, fa.Functions()...)
	})
	return out
}

// Classes returns every class-like definition across the project.
func (p *Project) Classes() []analyzer.ClassInfo {
	var out []analyzer.ClassInfo
	p.each(func(fa *analyzer.FileAnalyzer) {
		out = append(out, fa.Classes()...)
	})
	return out
}

// Fields returns declared fields across the project, optionally restricted
// to one class name.
func (p *Project) Fields(className string) []analyzer.FieldInfo {
	var out []analyzer.FieldInfo
	p.each(func(fa *analyzer.FileAnalyzer) {
		out = append(out, fa.Fields(className)...)
	})
	return out
}

// Calls returns every call site across the project.
func (p *Project) Calls() []analyzer.CallInfo {
	var out []analyzer.CallInfo
	p.each(func(fa *analyzer.FileAnalyzer) {
		out = append(out, fa.Calls()...)
	})
	return out
}

// Imports returns every import across the project.
func (p *Project) Imports() []analyzer.ImportInfo {
	var out []analyzer.ImportInfo
	p.each(func(fa *analyzer.FileAnalyzer) {
		out = append(out, fa.Imports()...)
	})
	return out
}

// Variables returns every variable declaration across the project.
func (p *Project) Variables() []analyzer.VariableInfo {
	var out []analyzer.VariableInfo
	p.each(func(fa *analyzer.FileAnalyzer) {
		out = append(out, fa.Variables()...)
	})
	return out
}

// Strings returns every string literal across the project.
func (p *Project) Strings() []analyzer.StringLiteral {
	var out []analyzer.StringLiteral
	p.each(func(fa *analyzer.FileAnalyzer) {
		out = append(out, fa.Strings()...)
	})
	return out
}

// FindSymbols returns every occurrence of name across the project.
func (p *Project) FindSymbols(name string) []analyzer.SymbolRef {
	var out []analyzer.SymbolRef
	p.each(func(fa *analyzer.FileAnalyzer) {
		out = append(out, fa.FindSymbols(name)...)
	})
	return out
}
