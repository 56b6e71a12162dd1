package layout

import (
	"fmt"
	"testing"
)

func TestLayoutRel(t *testing.T) {
	emptybuffercontainer := func(dim Dimensions) { fmt.Println("emptybuffercontainer", dim) }
	statusline := func(dim Dimensions) { fmt.Println("statusline", dim) }
	linenumbers := func(dim Dimensions) { fmt.Println("linenumbers", dim) }
	buffer := func(dim Dimensions) { fmt.Println("buffer", dim) }

	flex := Column(
		FlexItemBox(emptybuffercontainer, Exact(Rel(0.5)),
			Row(
				FlexItemBox(linenumbers, Exact(Rel(0.5)), nil),
				FlexItemBox(buffer, Exact(Rel(0.5)), nil),
			)),
		FlexItemBox(statusline, Exact(Rel(0.5)), nil))

	flex.StartLayouting(200, 200)
}

func TestLayoutAbs(t *testing.T) {
	linenumbers := func(dim Dimensions) { fmt.Println("linenumbers", dim) }
	buffer := func(dim Dimensions) { fmt.Println("buffer", dim) }

	flex := Row(
		FlexItemBox(linenumbers, Exact(Abs(3)), nil),
		FlexItemBox(buffer, Max(Rel(1)), nil),
	)
	flex.StartLayouting(200, 200)
}

func TestFlexItemBoxAssignsDistinctIDs(t *testing.T) {
	a := FlexItemBox(EmptyBox, Max(Rel(1)), nil)
	b := FlexItemBox(EmptyBox, Max(Rel(1)), nil)
	if a.id == b.id {
		t.Fatalf("expected distinct auto-assigned ids, got %d for both", a.id)
	}
}

func TestSplitPanesStacksRowOverStatus(t *testing.T) {
	var drewLeft, drewRight, drewStatus bool
	left := func(Dimensions) { drewLeft = true }
	right := func(Dimensions) { drewRight = true }
	status := func(d Dimensions) {
		drewStatus = true
		if d.Height != 1 {
			t.Fatalf("status height = %d, want 1", d.Height)
		}
	}

	SplitPanes(left, right, status, 1).StartLayouting(80, 24)

	if !drewLeft || !drewRight || !drewStatus {
		t.Fatalf("expected all three panes to be drawn: left=%v right=%v status=%v", drewLeft, drewRight, drewStatus)
	}
}

func TestColumnSplitsHeightBetweenItems(t *testing.T) {
	var dims []Dimensions
	record := func(d Dimensions) { dims = append(dims, d) }

	flex := Column(
		FlexItemBox(record, Exact(Abs(3)), nil),
		FlexItemBox(record, Max(Rel(1)), nil),
	)
	flex.StartLayouting(40, 20)

	if len(dims) != 2 {
		t.Fatalf("expected both boxes to be laid out, got %d", len(dims))
	}
	if dims[0].Height != 3 {
		t.Fatalf("first item height = %d, want 3", dims[0].Height)
	}
	if dims[0].Origin.Y != 0 || dims[1].Origin.Y != 3 {
		t.Fatalf("items should stack vertically without overlap: %+v", dims)
	}
}
