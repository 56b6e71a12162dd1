package splitter

import (
	"math"

	"splitfmt/chunk"
	"splitfmt/prefix"
	"splitfmt/rule"
	"splitfmt/splitset"
)

// runningSolution accumulates the best SplitSet seen so far for one
// findBestSplits call (spec.md §4.3, "Initialize a running solution").
// Every candidate is costed from prefix, the prefix that call was made for,
// so candidates reached through different unsplit extensions compare fairly.
type runningSolution struct {
	prefix   prefix.LinePrefix
	bestCost int
	bestSet  splitset.SplitSet
	found    bool
}

func (rs *runningSolution) update(cost int, set splitset.SplitSet) {
	if !rs.found || cost < rs.bestCost {
		rs.bestCost = cost
		rs.bestSet = set
		rs.found = true
	}
}

// findBestSplits is the memoized search entry point (spec.md §4.3).
func (ls *LineSplitter) findBestSplits(p prefix.LinePrefix) (splitset.SplitSet, bool) {
	if set, ok, hit := ls.memoLookup(p); hit {
		return set, ok
	}

	run := &runningSolution{prefix: p, bestCost: math.MaxInt64}
	ls.tryChunkRuleValues(p, run)

	ls.memoStore(p, run.bestSet, run.found)
	return run.bestSet, run.found
}

func (ls *LineSplitter) memoLookup(p prefix.LinePrefix) (splitset.SplitSet, bool, bool) {
	for _, e := range ls.memo[p.Hash()] {
		if e.prefix.Equal(p) {
			return e.set, e.ok, true
		}
	}
	return splitset.SplitSet{}, false, false
}

func (ls *LineSplitter) memoStore(p prefix.LinePrefix, set splitset.SplitSet, ok bool) {
	h := p.Hash()
	ls.memo[h] = append(ls.memo[h], memoEntry{prefix: p, set: set, ok: ok})
}

// tryChunkRuleValues enumerates the legal values for the rule governing the
// next undecided chunk (spec.md §4.3).
func (ls *LineSplitter) tryChunkRuleValues(p prefix.LinePrefix, run *runningSolution) {
	if p.Length() == ls.n-1 {
		// Base case: the sentinel is reached, nothing more to decide.
		run.update(ls.evaluateCost(run.prefix, splitset.Empty()), splitset.Empty())
		return
	}

	c := ls.chunks[p.Length()]
	r := c.Rule

	bound, ok := p.Value(r)
	var values []int
	switch {
	case !ok:
		values = rangeInts(0, r.NumValues())
	case bound.Kind == prefix.MustSplitAny:
		values = rangeInts(1, r.NumValues())
	case bound.Kind == prefix.Bound:
		values = []int{bound.Value}
	default:
		values = rangeInts(0, r.NumValues())
	}

	for _, v := range values {
		ls.tryRuleValue(p, c, r, v, run)
	}
}

func rangeInts(lo, hi int) []int {
	if hi <= lo {
		return nil
	}
	out := make([]int, hi-lo)
	for i := range out {
		out[i] = lo + i
	}
	return out
}

// tryRuleValue explores one candidate value for the rule governing the
// chunk at p.Length() (spec.md §4.3).
func (ls *LineSplitter) tryRuleValue(p prefix.LinePrefix, c *chunk.Chunk, r rule.Rule, v int, run *runningSolution) {
	newBindings := ls.advancePrefix(p, r, v)

	if r.IsSplit(v, c) {
		for _, longer := range p.Split(c, newBindings, ls.opts.SpacesPerIndent) {
			remaining, ok := ls.findBestSplits(longer)
			if !ok {
				continue
			}
			candidate := remaining.Add(p.Length(), longer.Column())
			run.update(ls.evaluateCost(run.prefix, candidate), candidate)
		}
		return
	}

	ls.tryChunkRuleValues(p.Extend(newBindings), run)
}

// advancePrefix computes the rule->bound map for the prefix one chunk
// longer than p (spec.md §4.3, "_advancePrefix").
func (ls *LineSplitter) advancePrefix(p prefix.LinePrefix, chunkRule rule.Rule, v int) map[rule.Rule]prefix.RuleBound {
	i := p.Length() + 1
	out := map[rule.Rule]prefix.RuleBound{}

	for r := range ls.prefixRules[i] {
		var rvBound prefix.RuleBound
		var rvInt int

		if r == chunkRule {
			rvBound = prefix.BoundValue(v)
			rvInt = v
		} else {
			b, ok := p.Value(r)
			if !ok {
				continue
			}
			switch b.Kind {
			case prefix.Bound:
				rvBound = b
				rvInt = b.Value
			case prefix.MustSplitAny:
				rvBound = b
				rvInt = -1
			default:
				continue
			}
		}

		if ls.suffixRules[i][r] {
			out[r] = rvBound
		}

		for s := range ls.suffixRules[i] {
			if s == r {
				continue
			}
			cv, ok := r.Constrain(rvInt, s)
			if !ok {
				cv, ok = s.ReverseConstrain(rvInt, r)
			}
			if ok {
				out[r] = rvBound
				out[s] = prefix.BoundValue(cv)
			}
		}
	}

	return out
}
