package lang

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		filename string
		want     ID
		ok       bool
	}{
		{"main.py", Python, true},
		{"stubs.pyi", Python, true},
		{"gui.pyw", Python, true},
		{"app.js", JavaScript, true},
		{"mod.mjs", JavaScript, true},
		{"mod.cjs", JavaScript, true},
		{"view.jsx", JavaScript, true},
		{"index.ts", TypeScript, true},
		{"App.tsx", TSX, true},
		{"Main.java", Java, true},
		{"main.go", Go, true},
		{"SHOUTY.PY", Python, true},
		{"deep/nested/path/util.py", Python, true},
		{"readme.md", "", false},
		{"Makefile", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		id, ok := reg.Detect(tc.filename)
		require.Equal(t, tc.ok, ok, "detect %q", tc.filename)
		if tc.ok {
			require.Equal(t, tc.want, id, "detect %q", tc.filename)
		}
	}
}

func TestRegistryLookups(t *testing.T) {
	reg := NewRegistry()

	require.Equal(t, []ID{Go, Java, JavaScript, Python, TSX, TypeScript}, reg.IDs())

	l, ok := reg.Get(Python)
	require.True(t, ok)
	require.Equal(t, Python, l.ID())
	require.NotNil(t, l.Grammar())

	_, ok = reg.Get("ruby")
	require.False(t, ok)

	require.True(t, reg.Supported("a.go"))
	require.False(t, reg.Supported("a.rb"))

	exts := reg.Extensions()
	require.Contains(t, exts, ".py")
	require.Contains(t, exts, ".tsx")
	require.Len(t, exts, 11)
}

// Every pattern must compile against its own grammar: a pattern referencing
// a node type the grammar does not define silently kills that extraction
// kind at runtime.
func TestPatternsCompile(t *testing.T) {
	reg := NewRegistry()
	for _, id := range reg.IDs() {
		l, ok := reg.Get(id)
		require.True(t, ok)

		pats := l.Patterns()
		for kind, pattern := range map[string]string{
			"function": pats.Function,
			"class":    pats.Class,
			"call":     pats.Call,
			"import":   pats.Import,
			"variable": pats.Variable,
			"string":   pats.String,
			"field":    pats.Field,
		} {
			_, err := sitter.NewQuery([]byte(pattern), l.Grammar())
			require.NoErrorf(t, err, "%s %s pattern", id, kind)
		}
	}
}

func TestNewParser(t *testing.T) {
	reg := NewRegistry()
	l, ok := reg.Get(Go)
	require.True(t, ok)

	p := l.NewParser()
	tree := p.Parse(nil, []byte("package main\n\nfunc main() {}\n"))
	require.NotNil(t, tree)
	require.Equal(t, "source_file", tree.RootNode().Type())
}
