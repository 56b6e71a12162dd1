package splitset

import "testing"

func TestEmptyHasNoSplits(t *testing.T) {
	s := Empty()
	if s.ShouldSplitAt(0) {
		t.Fatalf("Empty() must have no splits")
	}
}

func TestAddIsPersistent(t *testing.T) {
	a := Empty()
	b := a.Add(3, 10)

	if a.ShouldSplitAt(3) {
		t.Fatalf("Add must not mutate the receiver")
	}
	if !b.ShouldSplitAt(3) || b.GetColumn(3) != 10 {
		t.Fatalf("b should split at 3 with column 10, got %v", b)
	}
}

func TestAddChain(t *testing.T) {
	s := Empty().Add(1, 2).Add(5, 7).Add(1, 9)

	if s.GetColumn(1) != 9 {
		t.Fatalf("later Add for the same index should win, got %d", s.GetColumn(1))
	}
	if s.GetColumn(5) != 7 {
		t.Fatalf("GetColumn(5) = %d, want 7", s.GetColumn(5))
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestGetColumnPanicsWithoutSplit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("GetColumn on an unset index must panic")
		}
	}()
	Empty().GetColumn(0)
}
