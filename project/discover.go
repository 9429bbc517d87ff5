// Package project aggregates single-file analysis across many files. A
// Project resolves a request path (explicit file, glob pattern, or directory)
// to a file set, parses the set through a bounded worker pool, and answers
// the same structural questions the analyzer does, merged across files.
// Files that fail to read or parse are excluded from results rather than
// failing the whole request.
package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/treescope/treescope/analyzer"
	"github.com/treescope/treescope/lang"
)

// PathType classifies how a request path is interpreted.
type PathType string

const (
	PathTypeFile      PathType = "file"
	PathTypeGlob      PathType = "glob"
	PathTypeDirectory PathType = "directory"
)

// DetectPathType classifies a path. Anything carrying glob metacharacters is
// a glob, an existing directory is a directory, everything else is treated
// as a single file.
func DetectPathType(path string) PathType {
	if strings.ContainsAny(path, "*?[]") {
		return PathTypeGlob
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return PathTypeDirectory
	}
	return PathTypeFile
}

func defaultIgnoreDirs() map[string]struct{} {
	return map[string]struct{}{
		".git":          {},
		".hg":           {},
		".svn":          {},
		".jj":           {},
		"node_modules":  {},
		"vendor":        {},
		"dist":          {},
		"build":         {},
		"target":        {},
		".venv":         {},
		"__pycache__":   {},
		".mypy_cache":   {},
		".pytest_cache": {},
		".next":         {},
		".cache":        {},
		".turbo":        {},
		"coverage":      {},
	}
}

// findFiles resolves a request path to the sorted, deduplicated list of
// supported files it covers. An explicit file must exist and be supported;
// globs and directories silently drop what does not match or parse.
func findFiles(reg *lang.Registry, path string, pathType PathType, opts Options) ([]string, error) {
	var files []string
	var err error

	switch pathType {
	case PathTypeFile:
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		if !reg.Supported(path) {
			return nil, fmt.Errorf("%w: %s", analyzer.ErrUnsupportedLanguage, filepath.Ext(path))
		}
		files = []string{path}
	case PathTypeGlob:
		files, err = globFiles(reg, path, opts)
	case PathTypeDirectory:
		files, err = walkFiles(reg, path, opts)
	default:
		return nil, fmt.Errorf("unknown path type: %s", pathType)
	}
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	deduped := files[:0]
	prev := ""
	for i, f := range files {
		if i > 0 && f == prev {
			continue
		}
		deduped = append(deduped, f)
		prev = f
	}
	return deduped, nil
}

// globBase returns the longest static directory prefix of a glob pattern.
// The walk starts there so "src/**/*.py" never touches siblings of src.
func globBase(pattern string) string {
	parts := strings.Split(filepath.ToSlash(pattern), "/")
	var static []string
	for _, part := range parts {
		if strings.ContainsAny(part, "*?[]") {
			break
		}
		static = append(static, part)
	}
	if len(static) == len(parts) && len(parts) > 0 {
		static = static[:len(static)-1]
	}
	if len(static) == 0 {
		return "."
	}
	return filepath.FromSlash(strings.Join(static, "/"))
}

func globFiles(reg *lang.Registry, pattern string, opts Options) ([]string, error) {
	g, err := glob.Compile(filepath.ToSlash(pattern), '/')
	if err != nil {
		return nil, fmt.Errorf("bad glob pattern %q: %w", pattern, err)
	}

	base := globBase(pattern)
	if _, err := os.Stat(base); err != nil {
		return nil, fmt.Errorf("glob base not found: %s", base)
	}

	ignore := opts.ignoreDirs()
	var files []string
	err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == base {
				return nil
			}
			if _, skip := ignore[d.Name()]; skip {
				return filepath.SkipDir
			}
			return nil
		}
		if !reg.Supported(d.Name()) {
			return nil
		}
		if !g.Match(filepath.ToSlash(path)) {
			return nil
		}
		if tooLarge(d, opts.MaxFileBytes) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func walkFiles(reg *lang.Registry, root string, opts Options) ([]string, error) {
	ignore := opts.ignoreDirs()
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := ignore[d.Name()]; skip {
				return filepath.SkipDir
			}
			return nil
		}
		if !reg.Supported(d.Name()) {
			return nil
		}
		if tooLarge(d, opts.MaxFileBytes) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func tooLarge(d fs.DirEntry, maxBytes int64) bool {
	if maxBytes <= 0 {
		return false
	}
	info, err := d.Info()
	if err != nil {
		// Skip files we can't stat
		return true
	}
	return info.Size() > maxBytes
}
