package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treescope/treescope/lang"
)

const animalPy = `import os


class Animal:
    def speak(self):
        sound = "generic"
        return sound
`

const dogPy = `from animal import Animal


class Dog(Animal):
    def speak(self):
        self.bark()
        return "woof"

    def bark(self):
        print("woof")
`

func animalProject(t *testing.T) (*Project, string) {
	t.Helper()
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "animal.py", animalPy)
	writeFile(t, tmpDir, "dog.py", dogPy)

	p, err := New(lang.NewRegistry(), tmpDir, Options{Jobs: 1})
	require.NoError(t, err)
	return p, tmpDir
}

func TestProjectAggregation(t *testing.T) {
	p, tmpDir := animalProject(t)

	require.Equal(t, PathTypeDirectory, p.PathType())
	require.Len(t, p.Files(), 2)
	require.Equal(t, 2, p.FilesSearched())

	fns := p.Functions()
	require.Len(t, fns, 3)
	require.Equal(t, "speak", fns[0].Name)
	require.Equal(t, "Animal", fns[0].ClassName)
	require.Equal(t, filepath.Join(tmpDir, "animal.py"), fns[0].File)
	require.Equal(t, "speak", fns[1].Name)
	require.Equal(t, "Dog", fns[1].ClassName)
	require.Equal(t, "bark", fns[2].Name)

	classes := p.Classes()
	require.Len(t, classes, 2)
	require.Equal(t, "Animal", classes[0].Name)
	require.Equal(t, "Dog", classes[1].Name)
	require.Equal(t, []string{"Animal"}, classes[1].SuperClasses)

	imports := p.Imports()
	require.Len(t, imports, 2)
	require.Equal(t, "os", imports[0].Module)
	require.Equal(t, "animal", imports[1].Module)
}

func TestProjectCallRelations(t *testing.T) {
	p, tmpDir := animalProject(t)
	dogFile := filepath.Join(tmpDir, "dog.py")

	callers := p.Callers("bark", "")
	require.Len(t, callers, 1)
	require.Equal(t, "speak", callers[0].Caller)
	require.Equal(t, dogFile, callers[0].File)
	require.Equal(t, 6, callers[0].Line)

	callees := p.Callees("speak", "Dog")
	require.Len(t, callees, 1)
	require.Equal(t, "self.bark", callees[0].Callee)
	require.Equal(t, "Dog", callees[0].ClassName)
	require.Equal(t, 6, callees[0].Line)

	// Animal.speak makes no calls, so restricting to Animal yields nothing.
	require.Empty(t, p.Callees("speak", "Animal"))

	reverse := p.ReverseCallGraph()
	require.Equal(t, []string{"speak"}, reverse["bark"])
	require.Equal(t, []string{"bark"}, reverse["print"])

	graph := p.CallGraph()
	require.Equal(t, []string{"self.bark"}, graph["speak"])
	require.Equal(t, []string{"print"}, graph["bark"])
}

func TestProjectFunctionScopes(t *testing.T) {
	p, _ := animalProject(t)

	vars := p.FunctionVariables("speak", "")
	require.Len(t, vars, 1)
	require.Equal(t, "sound", vars[0].Name)

	strs := p.FunctionStrings("speak", "")
	require.Len(t, strs, 2)
	require.Equal(t, `"generic"`, strs[0].Value)
	require.Equal(t, `"woof"`, strs[1].Value)

	strs = p.FunctionStrings("speak", "Dog")
	require.Len(t, strs, 1)
	require.Equal(t, `"woof"`, strs[0].Value)
}

func TestProjectHierarchy(t *testing.T) {
	p, tmpDir := animalProject(t)

	supers, ok := p.SuperClasses("Dog")
	require.True(t, ok)
	require.Len(t, supers, 1)
	require.Equal(t, "Animal", supers[0].Name)
	require.True(t, supers[0].Resolved)
	require.Equal(t, filepath.Join(tmpDir, "animal.py"), supers[0].File)
	require.Equal(t, 4, supers[0].StartLine)

	supers, ok = p.SuperClasses("Animal")
	require.True(t, ok)
	require.Empty(t, supers)

	_, ok = p.SuperClasses("Cat")
	require.False(t, ok)

	subs := p.SubClasses("Animal")
	require.Len(t, subs, 1)
	require.Equal(t, "Dog", subs[0].Name)

	require.Empty(t, p.SubClasses("Dog"))
}

func TestProjectUnresolvedSuperClass(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "dog.py", dogPy)

	p, err := New(lang.NewRegistry(), tmpDir, Options{Jobs: 1})
	require.NoError(t, err)

	supers, ok := p.SuperClasses("Dog")
	require.True(t, ok)
	require.Len(t, supers, 1)
	require.Equal(t, "Animal", supers[0].Name)
	require.False(t, supers[0].Resolved)
	require.Empty(t, supers[0].File)
}

func TestProjectFunctionDefinition(t *testing.T) {
	p, tmpDir := animalProject(t)

	def, ok := p.FunctionDefinition("speak")
	require.True(t, ok)
	// File-sorted order puts animal.py first.
	require.Equal(t, filepath.Join(tmpDir, "animal.py"), def.File)
	require.Equal(t, "Animal", def.ClassName)

	_, ok = p.FunctionDefinition("meow")
	require.False(t, ok)
}

func TestProjectFindSymbols(t *testing.T) {
	p, _ := animalProject(t)

	refs := p.FindSymbols("bark")
	require.Len(t, refs, 2)
	require.Equal(t, 6, refs[0].StartLine)
	require.Equal(t, 9, refs[1].StartLine)
}

// A file that disappears between discovery and analysis is silently
// excluded, and files_searched reflects what was actually parsed.
func TestProjectFileRemovedAfterDiscovery(t *testing.T) {
	p, tmpDir := animalProject(t)
	require.NoError(t, os.Remove(filepath.Join(tmpDir, "dog.py")))

	require.Len(t, p.Files(), 2)
	require.Equal(t, 1, p.FilesSearched())

	fns := p.Functions()
	require.Len(t, fns, 1)
	require.Equal(t, "Animal", fns[0].ClassName)
}

func TestProjectSingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "animal.py", animalPy)

	p, err := New(lang.NewRegistry(), path, Options{})
	require.NoError(t, err)
	require.Equal(t, PathTypeFile, p.PathType())
	require.Equal(t, 1, p.FilesSearched())
	require.Len(t, p.Functions(), 1)
}
