package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treescope/treescope/lang"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectPathType(t *testing.T) {
	tmpDir := t.TempDir()

	require.Equal(t, PathTypeGlob, DetectPathType("src/**/*.py"))
	require.Equal(t, PathTypeGlob, DetectPathType("a?.py"))
	require.Equal(t, PathTypeGlob, DetectPathType("a[0].py"))
	require.Equal(t, PathTypeDirectory, DetectPathType(tmpDir))
	require.Equal(t, PathTypeFile, DetectPathType(filepath.Join(tmpDir, "missing.py")))
	require.Equal(t, PathTypeFile, DetectPathType("plain.py"))
}

func TestGlobBase(t *testing.T) {
	require.Equal(t, "src", globBase("src/**/*.py"))
	require.Equal(t, ".", globBase("*.py"))
	require.Equal(t, ".", globBase("**.py"))
	require.Equal(t, filepath.FromSlash("a/b"), globBase("a/b/*.go"))
	require.Equal(t, filepath.FromSlash("a/b"), globBase("a/b/c.py"))
}

func TestFindFilesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	a := writeFile(t, tmpDir, "a.py", "x = 1\n")
	b := writeFile(t, tmpDir, "b.js", "var y = 2;\n")
	writeFile(t, tmpDir, "c.txt", "not code\n")
	d := writeFile(t, tmpDir, "sub/d.py", "z = 3\n")
	writeFile(t, tmpDir, "node_modules/e.py", "ignored = True\n")
	writeFile(t, tmpDir, ".git/f.py", "ignored = True\n")

	files, err := findFiles(lang.NewRegistry(), tmpDir, PathTypeDirectory, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{a, b, d}, files)
}

func TestFindFilesGlob(t *testing.T) {
	tmpDir := t.TempDir()
	a := writeFile(t, tmpDir, "a.py", "x = 1\n")
	writeFile(t, tmpDir, "b.js", "var y = 2;\n")
	d := writeFile(t, tmpDir, "sub/d.py", "z = 3\n")

	reg := lang.NewRegistry()

	files, err := findFiles(reg, filepath.Join(tmpDir, "*.py"), PathTypeGlob, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{a}, files)

	files, err = findFiles(reg, tmpDir+"/**.py", PathTypeGlob, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{a, d}, files)

	files, err = findFiles(reg, filepath.Join(tmpDir, "*.rb"), PathTypeGlob, Options{})
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestFindFilesExplicit(t *testing.T) {
	tmpDir := t.TempDir()
	a := writeFile(t, tmpDir, "a.py", "x = 1\n")
	txt := writeFile(t, tmpDir, "c.txt", "not code\n")

	reg := lang.NewRegistry()

	files, err := findFiles(reg, a, PathTypeFile, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{a}, files)

	// An explicitly named unsupported file is a hard error, unlike
	// aggregation scope where such files are skipped.
	_, err = findFiles(reg, txt, PathTypeFile, Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported language")

	_, err = findFiles(reg, filepath.Join(tmpDir, "missing.py"), PathTypeFile, Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "file not found")
}

func TestFindFilesMaxBytes(t *testing.T) {
	tmpDir := t.TempDir()
	small := writeFile(t, tmpDir, "small.py", "x = 1\n")
	writeFile(t, tmpDir, "big.py", "# "+string(make([]byte, 4096))+"\n")

	files, err := findFiles(lang.NewRegistry(), tmpDir, PathTypeDirectory, Options{MaxFileBytes: 100})
	require.NoError(t, err)
	require.Equal(t, []string{small}, files)
}

func TestFindFilesCustomIgnoreDirs(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "skipme/a.py", "x = 1\n")
	b := writeFile(t, tmpDir, "node_modules/b.py", "y = 2\n")

	opts := Options{IgnoreDirs: []string{"skipme"}}
	files, err := findFiles(lang.NewRegistry(), tmpDir, PathTypeDirectory, opts)
	require.NoError(t, err)
	require.Equal(t, []string{b}, files)
}
