package project

import (
	"fmt"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treescope/treescope/lang"
)

// TestRunAnalyzeWorkers exercises the worker pool for concurrency
// correctness. Run with -race to detect races.
func TestRunAnalyzeWorkers(t *testing.T) {
	tests := []struct {
		name      string
		fileCount int
		jobs      int
	}{
		{"single_file_single_worker", 1, 1},
		{"multiple_files_single_worker", 5, 1},
		{"multiple_files_multiple_workers", 10, 4},
		{"more_workers_than_files", 3, 10},
		{"many_files_high_concurrency", 50, 16},
		{"zero_jobs_defaults_to_one", 5, 0},
		{"empty_files", 0, 4},
	}

	reg := lang.NewRegistry()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			var files, expected []string
			for i := 0; i < tc.fileCount; i++ {
				name := fmt.Sprintf("mod_%d.py", i)
				fn := fmt.Sprintf("func_%d", i)
				files = append(files, writeFile(t, tmpDir, name, fmt.Sprintf("def %s():\n    pass\n", fn)))
				expected = append(expected, fn)
			}

			results := runAnalyzeWorkers(reg, files, tc.jobs)
			require.Len(t, results, tc.fileCount)

			var got []string
			for _, res := range results {
				require.NoError(t, res.err)
				require.NotNil(t, res.fa)
				fns := res.fa.Functions()
				require.Len(t, fns, 1)
				got = append(got, fns[0].Name)
			}

			sort.Strings(got)
			sort.Strings(expected)
			require.Equal(t, expected, got)
		})
	}
}

func TestRunAnalyzeWorkersReportsFailures(t *testing.T) {
	tmpDir := t.TempDir()
	good := writeFile(t, tmpDir, "good.py", "x = 1\n")
	missing := filepath.Join(tmpDir, "missing.py")

	results := runAnalyzeWorkers(lang.NewRegistry(), []string{good, missing}, 2)
	require.Len(t, results, 2)

	byPath := make(map[string]fileResult)
	for _, res := range results {
		byPath[res.path] = res
	}

	require.NoError(t, byPath[good].err)
	require.NotNil(t, byPath[good].fa)
	require.Error(t, byPath[missing].err)
	require.Nil(t, byPath[missing].fa)
}
