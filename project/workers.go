package project

import (
	"sync"

	"github.com/treescope/treescope/analyzer"
	"github.com/treescope/treescope/lang"
)

// fileResult is one file's analysis outcome: either a ready analyzer or the
// error that kept the file out of the set.
type fileResult struct {
	path string
	fa   *analyzer.FileAnalyzer
	err  error
}

// runAnalyzeWorkers parses files concurrently with a bounded pool and
// returns one result per file.
func runAnalyzeWorkers(reg *lang.Registry, files []string, jobs int) []fileResult {
	results := make(chan fileResult, 128)
	jobQueue := make(chan string, 128)
	var wg sync.WaitGroup

	workerCount := jobs
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(files) {
		workerCount = len(files)
	}

	worker := func() {
		defer wg.Done()
		for path := range jobQueue {
			fa, err := analyzer.New(reg, path)
			results <- fileResult{path: path, fa: fa, err: err}
		}
	}

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go worker()
	}

	go func() {
		for _, f := range files {
			jobQueue <- f
		}
		close(jobQueue)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []fileResult
	for res := range results {
		all = append(all, res)
	}
	return all
}
