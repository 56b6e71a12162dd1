package batch

import (
	"splitfmt/chunk"
	"splitfmt/rule"
)

// bookkeepRules sets every Mutable rule's Start/End to the first and last
// chunk index it governs across the whole stream (spec.md §4.7, step 1's
// "no rule open past i" test reads these back).
func bookkeepRules(chunks []*chunk.Chunk) {
	seen := map[rule.Rule]bool{}
	for i, c := range chunks {
		if c.Rule == nil {
			continue
		}
		m, ok := c.Rule.(rule.Mutable)
		if !ok {
			continue
		}
		if !seen[c.Rule] {
			seen[c.Rule] = true
			m.SetStart(i)
		}
		m.SetEnd(i)
	}
}

// ruleEnd returns the chunk index a rule stops governing, or i itself if the
// rule carries no Mutable bookkeeping (treating it as never "open").
func ruleEnd(c *chunk.Chunk, i int) int {
	if c.Rule == nil {
		return i
	}
	m, ok := c.Rule.(rule.Mutable)
	if !ok {
		return i
	}
	return m.GetEnd()
}

// findCutPoints returns the indices of every safe cut point in chunks: a
// hard split at top-level nesting, carrying no block of its own, with no rule still
// open past it (spec.md §4.7, step 1).
func findCutPoints(chunks []*chunk.Chunk) []int {
	var cuts []int
	maxEndSoFar := 0

	for i, c := range chunks {
		if end := ruleEnd(c, i); end > maxEndSoFar {
			maxEndSoFar = end
		}

		if i == len(chunks)-1 {
			continue // the stream's own trailing sentinel is not a cut point
		}

		if c.IsHardSplit && c.Nesting == 0 && len(c.BlockChunks) == 0 && maxEndSoFar <= i {
			cuts = append(cuts, i)
		}
	}

	return cuts
}
