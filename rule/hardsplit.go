package rule

// HardSplitRule is the always-split, single-value variant: every chunk it
// governs is an unconditional line break. It has no cost of its own — by the
// time a chunk carries a HardSplitRule the split already happened, so there
// is nothing left to charge a rule cost for (spec: "not applicable to
// HardSplitRule, it's already forced").
type HardSplitRule struct {
	start, end int
}

// NewHardSplitRule returns a fresh HardSplitRule. Each hardened rule gets its
// own instance — see batch.hardenRule — shared by every chunk that rule
// governed, so chunks hardened from different original rules never carry
// equal rules under pointer identity.
func NewHardSplitRule() *HardSplitRule {
	return &HardSplitRule{}
}

func (r *HardSplitRule) NumValues() int { return 1 }

func (r *HardSplitRule) Cost() int { return 0 }

func (r *HardSplitRule) IsSplit(value int, chunk Splittable) bool { return true }

func (r *HardSplitRule) Constrain(myValue int, other Rule) (int, bool) { return 0, false }

func (r *HardSplitRule) ReverseConstrain(myValue int, other Rule) (int, bool) { return 0, false }

func (r *HardSplitRule) SplitsOnInnerRules() bool { return false }

func (r *HardSplitRule) FullySplitValue() int { return 0 }

func (r *HardSplitRule) SetStart(i int) { r.start = i }
func (r *HardSplitRule) SetEnd(i int)   { r.end = i }
func (r *HardSplitRule) GetStart() int  { return r.start }
func (r *HardSplitRule) GetEnd() int    { return r.end }
