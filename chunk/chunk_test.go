package chunk

import "testing"

func TestSentinelHasNoRule(t *testing.T) {
	s := Sentinel()
	if s.Rule != nil {
		t.Fatalf("Sentinel() must carry no rule")
	}
	if s.Text() != "" {
		t.Fatalf("Sentinel() must carry no text")
	}
}

func TestWithSelection(t *testing.T) {
	c := New("abc", nil).WithSelection(1, 2)
	if !c.HasSelection || c.SelectionStart != 1 || c.SelectionEnd != 2 {
		t.Fatalf("WithSelection did not set offsets: %+v", c)
	}
}

func TestLenCountsRunes(t *testing.T) {
	c := New("héllo", nil)
	if c.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", c.Len())
	}
}
