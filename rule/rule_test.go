package rule

import "testing"

type fakeChunk struct{ text string }

func (f fakeChunk) Text() string { return f.text }

func TestHardSplitRuleAlwaysSplits(t *testing.T) {
	r := NewHardSplitRule()
	if r.NumValues() != 1 {
		t.Fatalf("NumValues = %d, want 1", r.NumValues())
	}
	if !r.IsSplit(0, fakeChunk{}) {
		t.Fatalf("HardSplitRule must split regardless of value")
	}
	if _, ok := r.Constrain(0, r); ok {
		t.Fatalf("HardSplitRule must not constrain")
	}
}

func TestSimpleRuleDefaultIsSplit(t *testing.T) {
	r := NewSimpleRule(2, 3)
	if r.IsSplit(0, fakeChunk{}) {
		t.Fatalf("value 0 must never split")
	}
	if !r.IsSplit(1, fakeChunk{}) {
		t.Fatalf("non-zero value must split under the default predicate")
	}
	if r.FullySplitValue() != 1 {
		t.Fatalf("FullySplitValue = %d, want 1", r.FullySplitValue())
	}
	if r.Cost() != 3 {
		t.Fatalf("Cost = %d, want 3", r.Cost())
	}
}

func TestSimpleRuleConstrain(t *testing.T) {
	a := NewSimpleRule(2, 0)
	b := NewSimpleRule(2, 0)
	a.ConstrainFn = func(myValue int, other Rule) (int, bool) {
		if other == Rule(b) && myValue == 1 {
			return 1, true
		}
		return 0, false
	}

	v, ok := a.Constrain(1, b)
	if !ok || v != 1 {
		t.Fatalf("Constrain(1, b) = (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := a.Constrain(0, b); ok {
		t.Fatalf("Constrain(0, b) should impose no constraint")
	}
}

func TestBookkeepingFields(t *testing.T) {
	r := NewSimpleRule(3, 1)
	r.SetStart(2)
	r.SetEnd(9)
	if r.GetStart() != 2 || r.GetEnd() != 9 {
		t.Fatalf("Start/End = %d/%d, want 2/9", r.GetStart(), r.GetEnd())
	}
}
