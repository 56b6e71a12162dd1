// Package layout resolves terminal-cell boxes for cmd/splitfmt's -ui mode:
// a Flex tree of rows/columns, each item constrained between a minimum and
// a maximum size (absolute cells or a fraction of the parent), laid out
// depth-first so nested Flex trees resolve against the box their parent
// already settled on.
package layout

import (
	"slices"
	"sync"
)

type Point struct {
	X, Y int
}

// Flex is one row or column of FlexItems, sized along its Dir axis.
type Flex struct {
	Dir   Direction // direction of the main axis
	Items []FlexItem
}

func Column(items ...FlexItem) *Flex {
	return &Flex{Dir: Y, Items: items}
}

func Row(items ...FlexItem) *Flex {
	return &Flex{Dir: X, Items: items}
}

// SplitPanes is the one layout cmd/splitfmt's -ui mode needs: a top row
// holding two equal-width panes (source text, formatted text) over a
// status line pinned to statusHeight rows.
func SplitPanes(left, right, status LayoutBox, statusHeight int) *Flex {
	return Column(
		FlexItemBox(EmptyBox, Max(Rel(1)), Row(
			FlexItemBox(left, Max(Rel(0.5)), nil),
			FlexItemBox(right, Max(Rel(0.5)), nil),
		)),
		FlexItemBox(status, Exact(Abs(statusHeight)), nil),
	)
}

// StartLayouting resolves f against a width x height screen, origin (0, 0).
func (f Flex) StartLayouting(width, height int) {
	c := context{
		curDimensions: Dimensions{
			Origin: Point{X: 0, Y: 0},
			Width:  width,
			Height: height,
		},
	}
	f.Layout(c)
}

// Layout dispatches on f.Dir. Min size constraints gate whether an item is
// laid out at all; max size constraints cap how much of the remaining space
// it can claim; relative sizes resolve against the axis's own extent, never
// the cross axis.
func (f Flex) Layout(c context) {
	if f.Dir == Y {
		f.layoutMainAxis(c, true)
	} else {
		f.layoutMainAxis(c, false)
	}
}

// layoutMainAxis distributes c's extent along the main axis (height if
// vertical, width if horizontal) among f.Items, then recurses into any
// item carrying its own nested Flex.
func (f Flex) layoutMainAxis(c context, vertical bool) {
	extent := axisExtent(c.curDimensions, vertical)

	// Only items whose minimum fits in an equal share are laid out at all.
	smallestPossibleSize := extent / len(f.Items)
	itemsToLayout := filter(f.Items, func(_ int, item FlexItem) bool {
		return item.Size.Min.toAbs(extent) <= smallestPossibleSize
	})

	filledSpace := distribute(itemsToLayout, extent)

	contextmap := make(map[int]Dimensions, len(itemsToLayout))
	orig := c.curDimensions.Origin
	for i, item := range itemsToLayout {
		var dim Dimensions
		if vertical {
			dim = Dimensions{orig, c.curDimensions.Width, filledSpace[item.id]}
			orig = Point{orig.X, orig.Y + dim.Height}
		} else {
			dim = Dimensions{orig, filledSpace[item.id], c.curDimensions.Height}
			orig = Point{orig.X + dim.Width, orig.Y}
		}
		contextmap[i] = dim
		item.Box(dim)
	}

	// Items are laid out in list order above so each one's origin follows
	// directly from its predecessor; nested Flex trees only need resolving
	// once every sibling's box is already settled.
	for i, item := range itemsToLayout {
		if item.Flex != nil {
			item.Flex.Layout(context{contextmap[i]})
		}
	}
}

func axisExtent(d Dimensions, vertical bool) int {
	if vertical {
		return d.Height
	}
	return d.Width
}

// distribute gives every item its max size, smallest max first, as long as
// giving every remaining item that much still fits; once it doesn't, the
// rest of the extent is split evenly among whatever items are left.
func distribute(items []FlexItem, extent int) map[int]int {
	vertical := func(item FlexItem) int { return item.Size.Max.toAbs(extent) }

	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b FlexItem) int { return vertical(a) - vertical(b) })

	filled := make(map[int]int, len(sorted))
	remaining := extent
	given := 0 // what every item still in rest has received so far
	for tos, item := range sorted {
		rest := sorted[tos:]
		fill := vertical(item) - given
		if fill*len(rest) <= remaining {
			for _, r := range rest {
				filled[r.id] += fill
				remaining -= fill
			}
			given += fill
			continue
		}
		fill = remaining / len(rest)
		for _, r := range rest {
			filled[r.id] += fill
		}
		break
	}
	return filled
}

func filter[T any](ss []T, test func(i int, t T) bool) (ret []T) {
	for i, s := range ss {
		if test(i, s) {
			ret = append(ret, s)
		}
	}
	return
}

type AutoId struct {
	sync.Mutex
	id int
}

func (a *AutoId) ID() (id int) {
	a.Lock()
	defer a.Unlock()

	id = a.id
	a.id++
	return
}

var ai AutoId

type FlexItem struct {
	id   int
	Box  LayoutBox
	Flex *Flex
	Size Constraint
}

func FlexItemBox(box LayoutBox, size Constraint, flex *Flex) FlexItem {
	return FlexItem{id: ai.ID(), Box: box, Size: size, Flex: flex}
}

type Constraint struct {
	Min, Max Size
}

func Exact(size Size) Constraint {
	return Constraint{Min: size, Max: size}
}

func Max(size Size) Constraint {
	return Constraint{Min: Abs(0), Max: size}
}

type Size struct {
	abs int     // absolute size
	rel float64 // [0, 1]
}

func Abs(abs int) Size {
	return Size{abs: abs}
}

func Rel(rel float64) Size {
	return Size{rel: rel}
}

func (s Size) toAbs(size int) int {
	if s.abs != 0 {
		return s.abs
	}
	return int(s.rel * float64(size))
}

type Direction int

const (
	Y = iota
	X
)

type context struct {
	curDimensions Dimensions
}

// Dimensions resolves a box: Origin is its top-left corner.
type Dimensions struct {
	Origin        Point
	Width, Height int
}

type LayoutBox func(Dimensions)

func EmptyBox(Dimensions) {}
