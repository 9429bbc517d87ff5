package analyzer

import (
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/treescope/treescope/lang"
)

// compiledQuery pairs a compiled tree-sitter query with its capture name
// table, resolved once at compile time.
type compiledQuery struct {
	query        *sitter.Query
	captureNames []string
}

func compileQuery(pattern string, language *lang.Language) (*compiledQuery, error) {
	q, err := sitter.NewQuery([]byte(pattern), language.Grammar())
	if err != nil {
		return nil, fmt.Errorf("compile query: %w", err)
	}

	captureCount := int(q.CaptureCount())
	captureNames := make([]string, captureCount)
	for i := 0; i < captureCount; i++ {
		captureNames[i] = q.CaptureNameForId(uint32(i))
	}

	return &compiledQuery{
		query:        q,
		captureNames: captureNames,
	}, nil
}

func (q *compiledQuery) captureName(index uint32) string {
	if int(index) >= len(q.captureNames) {
		return fmt.Sprintf("capture_%d", index)
	}
	return q.captureNames[index]
}

// capture is a single named capture from one query match.
type capture struct {
	name string
	node *sitter.Node
}

// matches runs a pattern against the file's tree and returns the raw matches,
// each match keeping its captures grouped together. A pattern that fails to
// compile degrades to no matches: the file stays analyzable for every other
// extraction kind.
func (a *FileAnalyzer) matches(pattern string) [][]capture {
	if pattern == "" {
		return nil
	}
	q, err := compileQuery(pattern, a.language)
	if err != nil {
		return nil
	}

	cursor := sitter.NewQueryCursor()
	cursor.Exec(q.query, a.tree.RootNode())

	var results [][]capture
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		caps := make([]capture, 0, len(match.Captures))
		for _, c := range match.Captures {
			caps = append(caps, capture{name: q.captureName(c.Index), node: c.Node})
		}
		results = append(results, caps)
	}
	return results
}

// captures runs a pattern and flattens the results into capture-name buckets.
func (a *FileAnalyzer) captures(pattern string) map[string][]*sitter.Node {
	ms := a.matches(pattern)
	if ms == nil {
		return nil
	}
	out := make(map[string][]*sitter.Node)
	for _, m := range ms {
		for _, c := range m {
			out[c.name] = append(out[c.name], c.node)
		}
	}
	return out
}

// sortByStart orders nodes by ascending start offset. Containment lookups
// binary-search this order.
func sortByStart(nodes []*sitter.Node) []*sitter.Node {
	sorted := make([]*sitter.Node, len(nodes))
	copy(sorted, nodes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartByte() < sorted[j].StartByte()
	})
	return sorted
}

// firstWithin returns the first node (in start-offset order) whose byte range
// lies inside outer, or nil when none does. The candidates slice must already
// be sorted by sortByStart.
func firstWithin(outer *sitter.Node, candidates []*sitter.Node) *sitter.Node {
	lo := sort.Search(len(candidates), func(i int) bool {
		return candidates[i].StartByte() >= outer.StartByte()
	})
	for i := lo; i < len(candidates); i++ {
		n := candidates[i]
		if n.StartByte() > outer.EndByte() {
			break
		}
		if n.EndByte() <= outer.EndByte() {
			return n
		}
	}
	return nil
}
