package prefix

import (
	"testing"

	"splitfmt/chunk"
	"splitfmt/rule"
)

func TestInitial(t *testing.T) {
	p := Initial(2, 2)
	if p.Length() != 0 || p.Column() != 4 {
		t.Fatalf("Initial(2,2) = {%d,%d}, want {0,4}", p.Length(), p.Column())
	}
}

func TestExtendAdvancesLengthNotColumn(t *testing.T) {
	p := Initial(0, 2)
	e := p.Extend(nil)
	if e.Length() != 1 {
		t.Fatalf("Extend length = %d, want 1", e.Length())
	}
	if e.Column() != p.Column() {
		t.Fatalf("Extend must not change column")
	}
}

func TestEqualIgnoresMapIterationOrder(t *testing.T) {
	r1 := rule.NewSimpleRule(2, 0)
	r2 := rule.NewSimpleRule(2, 0)

	a := map[rule.Rule]RuleBound{r1: BoundValue(1), r2: MustSplit()}
	b := map[rule.Rule]RuleBound{r2: MustSplit(), r1: BoundValue(1)}

	pa := Initial(0, 2).Extend(a)
	pb := Initial(0, 2).Extend(b)

	if !pa.Equal(pb) {
		t.Fatalf("prefixes built from the same bindings in different map-literal order must be equal")
	}
	if pa.Hash() != pb.Hash() {
		t.Fatalf("equal prefixes must hash equal: %d vs %d", pa.Hash(), pb.Hash())
	}
}

func TestEqualDistinguishesBindings(t *testing.T) {
	r1 := rule.NewSimpleRule(2, 0)

	pa := Initial(0, 2).Extend(map[rule.Rule]RuleBound{r1: BoundValue(0)})
	pb := Initial(0, 2).Extend(map[rule.Rule]RuleBound{r1: BoundValue(1)})

	if pa.Equal(pb) {
		t.Fatalf("prefixes with different bindings for the same rule must not be equal")
	}
}

func TestSplitFlushLeftForcesColumnZero(t *testing.T) {
	c := chunk.New("}", nil)
	c.FlushLeft = true

	results := Initial(3, 2).Split(c, nil, 2)
	if len(results) != 1 || results[0].Column() != 0 {
		t.Fatalf("FlushLeft split should produce exactly one prefix at column 0, got %+v", results)
	}
}

func TestSplitAbsoluteIndentOverride(t *testing.T) {
	c := chunk.New("x", nil)
	c.AbsoluteIndent = 7

	results := Initial(0, 2).Split(c, nil, 2)
	if len(results) != 1 || results[0].Column() != 7 {
		t.Fatalf("AbsoluteIndent override should pin the column, got %+v", results)
	}
}

func TestSplitEnumeratesNestingCandidates(t *testing.T) {
	c := chunk.New("x", nil)
	c.Nesting = 1

	results := Initial(0, 2).Split(c, nil, 2)
	if len(results) != 2 {
		t.Fatalf("expected two indentation candidates, got %d: %+v", len(results), results)
	}
	cols := map[int]bool{results[0].Column(): true, results[1].Column(): true}
	if !cols[2] || !cols[4] {
		t.Fatalf("expected columns {2,4}, got %+v", cols)
	}
}
