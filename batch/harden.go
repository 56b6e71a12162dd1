package batch

import (
	"sort"

	"splitfmt/chunk"
	"splitfmt/rule"
)

// flattenNesting renumbers each chunk's nesting depth to its rank among the
// batch's distinct non-zero depths, preserving order but removing gaps
// (spec.md §4.7, step 2). It does not look inside BlockChunks: a block's
// chunks reach their sub-splitter with their nesting depths unchanged.
func flattenNesting(chunks []*chunk.Chunk) {
	seen := map[int]bool{}
	for _, c := range chunks {
		if c.Nesting != 0 {
			seen[c.Nesting] = true
		}
	}
	if len(seen) == 0 {
		return
	}

	depths := make([]int, 0, len(seen))
	for d := range seen {
		depths = append(depths, d)
	}
	sort.Ints(depths)

	rank := make(map[int]int, len(depths))
	for i, d := range depths {
		rank[d] = i + 1
	}

	for _, c := range chunks {
		if c.Nesting != 0 {
			c.Nesting = rank[c.Nesting]
		}
	}
}

// preempt hardens any rule whose combinatorial weight makes the batch
// intractable to search exhaustively: if the product of numValues across the
// batch's non-hard rules reaches the configured threshold, every rule whose
// governed span is wider than the page is hardened outright (spec.md §4.7,
// steps 3-4).
func (lw *LineWriter) preempt(chunks []*chunk.Chunk) {
	if lw.opts.DisablePreemption {
		return
	}

	rules := distinctRules(chunks)
	product := 1
	threshold := lw.opts.product()
	for _, r := range rules {
		if _, hard := r.(*rule.HardSplitRule); hard {
			continue
		}
		product *= r.NumValues()
		if product >= threshold {
			break
		}
	}
	if product < threshold {
		return
	}

	lw.logf("batch: preemption triggered (rule-value product >= %d)", threshold)

	hardened := map[rule.Rule]bool{}
	for _, r := range rules {
		if _, hard := r.(*rule.HardSplitRule); hard {
			continue
		}
		if hardened[r] {
			continue
		}
		if spanWidth(chunks, r) > lw.opts.PageWidth {
			lw.hardenRule(r, chunks, hardened)
		}
	}
}

func distinctRules(chunks []*chunk.Chunk) []rule.Rule {
	seen := map[rule.Rule]bool{}
	var out []rule.Rule
	for _, c := range chunks {
		if c.Rule != nil && !seen[c.Rule] {
			seen[c.Rule] = true
			out = append(out, c.Rule)
		}
	}
	return out
}

// spanWidth sums the rendered width chunks[r.start+1, r.end] would add if
// laid out unsplit, including the contribution of any inline blocks
// (spec.md §4.7, step 3: "including unsplitBlockLength").
func spanWidth(chunks []*chunk.Chunk, r rule.Rule) int {
	m, ok := r.(rule.Mutable)
	if !ok {
		return 0
	}
	width := 0
	for i := m.GetStart() + 1; i <= m.GetEnd() && i < len(chunks); i++ {
		width += chunks[i].Len() + chunks[i].UnsplitBlockLength
	}
	return width
}

// hardenRule forces every chunk r governs to split, replaces r with a fresh
// HardSplitRule wherever it's still referenced, and recursively hardens any
// other rule r constrains into also being fully split. Idempotent and
// cycle-safe via hardened (spec.md §4.7, step 4).
func (lw *LineWriter) hardenRule(r rule.Rule, chunks []*chunk.Chunk, hardened map[rule.Rule]bool) {
	if hardened[r] {
		return
	}
	hardened[r] = true
	lw.logf("batch: hardening rule (numValues=%d)", r.NumValues())

	fresh := rule.NewHardSplitRule()
	for _, c := range chunks {
		if c.Rule == r {
			c.IsHardSplit = true
			c.Rule = fresh
		}
	}

	fullySplit := r.FullySplitValue()
	for _, other := range distinctRules(chunks) {
		if other == r || hardened[other] {
			continue
		}
		if v, ok := r.Constrain(fullySplit, other); ok && v == other.FullySplitValue() {
			lw.hardenRule(other, chunks, hardened)
		}
	}
}
