package splitter

import (
	"splitfmt/prefix"
	"splitfmt/rule"
	"splitfmt/splitset"
)

// evaluateCost walks chunks[p.Length(), n) under splits, accumulating line
// length starting at p.Column() (spec.md §4.4).
func (ls *LineSplitter) evaluateCost(p prefix.LinePrefix, splits splitset.SplitSet) int {
	total := 0
	lineLen := p.Column()
	countedRules := map[rule.Rule]bool{}
	spanAcc := map[*rule.Span]bool{}

	for i := p.Length(); i < ls.n; i++ {
		c := ls.chunks[i]
		lineLen += c.Len()
		delimiterColumn := lineLen // column the chunk's own text (and any opening delimiter it carries) ends at

		if i == ls.n-1 {
			break
		}

		if splits.ShouldSplitAt(i) {
			if lineLen > ls.pageWidth {
				total += (lineLen - ls.pageWidth) * ls.opts.OverflowCharCost
			}
			for _, sp := range c.Spans {
				spanAcc[sp] = true
			}
			if c.Rule != nil && !countedRules[c.Rule] {
				countedRules[c.Rule] = true
				total += c.Rule.Cost()
			}
			if len(c.BlockChunks) > 0 {
				block := ls.formatBlock(i, delimiterColumn)
				total += block.cost
			}
			lineLen = splits.GetColumn(i)
		} else {
			if c.SpaceWhenUnsplit {
				lineLen++
			}
			lineLen += c.UnsplitBlockLength
		}
	}

	if lineLen > ls.pageWidth {
		total += (lineLen - ls.pageWidth) * ls.opts.OverflowCharCost
	}
	for sp := range spanAcc {
		total += sp.Cost
	}

	return total
}
