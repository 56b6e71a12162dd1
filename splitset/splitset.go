// Package splitset implements the engine's output decision: a sparse,
// immutable map from chunk index to the column the following line starts
// at. Adapted from the teacher's persistent-rope discipline (every mutator
// on rope.Rope returns a new value rather than touching the receiver): every
// mutation here returns a new value too, so a SplitSet can be shared by
// reference across every memo entry that produced or extended it.
package splitset

// SplitSet maps chunk index -> starting column of the line that follows a
// split at that index. Indices not present mean "no split here".
type SplitSet struct {
	columns map[int]int
}

// Empty returns a SplitSet with no splits.
func Empty() SplitSet {
	return SplitSet{}
}

// Add returns a new SplitSet identical to the receiver except index now maps
// to column. The receiver is never modified: its entries are copied into a
// fresh backing map on every call.
func (s SplitSet) Add(index, column int) SplitSet {
	if column < 0 {
		panic("splitset: column must be >= 0")
	}
	out := make(map[int]int, len(s.columns)+1)
	for k, v := range s.columns {
		out[k] = v
	}
	out[index] = column
	return SplitSet{columns: out}
}

// ShouldSplitAt reports whether i has a recorded split.
func (s SplitSet) ShouldSplitAt(i int) bool {
	_, ok := s.columns[i]
	return ok
}

// GetColumn returns the column recorded for i. Only valid when
// ShouldSplitAt(i) is true; calling it otherwise is a programmer error and
// panics rather than silently returning a bogus column (spec.md §7).
func (s SplitSet) GetColumn(i int) int {
	col, ok := s.columns[i]
	if !ok {
		panic("splitset: GetColumn called on an index with no split")
	}
	return col
}

// Len reports how many indices carry a split. Useful for tests and for the
// façade's diagnostics; not part of the spec's required surface.
func (s SplitSet) Len() int {
	return len(s.columns)
}
