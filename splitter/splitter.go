// Package splitter implements LineSplitter: the memoized depth-first search
// over rule-value assignments that picks where a batch of chunks breaks into
// lines (spec.md §4.3-§4.6). One LineSplitter is created per batch, used for
// exactly one top-level Apply call, and discarded — its memo and block cache
// are never shared across batches (spec.md §3, "Lifecycles").
package splitter

import (
	"io"

	"splitfmt/chunk"
	"splitfmt/prefix"
	"splitfmt/rule"
	"splitfmt/splitset"
)

// Options carries the project-wide configuration constants spec.md §6 calls
// out: SpacesPerIndent and OverflowCharCost. Both are plain values threaded
// in by the caller, not package-level singletons, so tests can vary them
// without touching global state (spec.md §9).
type Options struct {
	SpacesPerIndent  int
	OverflowCharCost int
}

// DefaultOptions matches the values spec.md §6 calls typical.
func DefaultOptions() Options {
	return Options{SpacesPerIndent: 2, OverflowCharCost: 100}
}

// Result is what Apply returns: the cost of the chosen solution and, if any
// chunk in the batch carried a selection offset, its position counted from
// the first byte this call writes. Bytes the writer already held before the
// call are not counted.
type Result struct {
	Cost           int
	SelectionStart int
	SelectionEnd   int
	HasSelection   bool
}

// LineSplitter searches for the lowest-cost way to split one batch of
// chunks. Construct with New, call Apply exactly once.
type LineSplitter struct {
	lineEnding string
	pageWidth  int
	chunks     []*chunk.Chunk
	indent     int
	opts       Options

	n int // len(chunks); chunks[n-1] is the sentinel

	prefixRules []map[rule.Rule]bool // prefixRules[i]: rules in chunks[0,i)
	suffixRules []map[rule.Rule]bool // suffixRules[i]: rules in chunks[i,n-1)

	memo       map[uint64][]memoEntry
	blockCache map[blockKey]blockResult
}

type memoEntry struct {
	prefix prefix.LinePrefix
	set    splitset.SplitSet
	ok     bool
}

// New constructs a LineSplitter for one batch. chunks must be non-empty and
// end with a sentinel chunk carrying no rule (spec.md §6); violating that is
// a programmer error in the caller and panics rather than producing a
// confusing downstream failure.
func New(lineEnding string, pageWidth int, chunks []*chunk.Chunk, indent int, opts Options) *LineSplitter {
	if len(chunks) == 0 {
		panic("splitter: chunks must be non-empty")
	}
	ls := &LineSplitter{
		lineEnding: lineEnding,
		pageWidth:  pageWidth,
		chunks:     chunks,
		indent:     indent,
		opts:       opts,
		n:          len(chunks),
		memo:       make(map[uint64][]memoEntry),
		blockCache: make(map[blockKey]blockResult),
	}
	ls.precomputeRuleSets()
	return ls
}

func (ls *LineSplitter) precomputeRuleSets() {
	ls.prefixRules = make([]map[rule.Rule]bool, ls.n+1)
	ls.suffixRules = make([]map[rule.Rule]bool, ls.n+1)

	ls.prefixRules[0] = map[rule.Rule]bool{}
	for i := 0; i < ls.n; i++ {
		next := make(map[rule.Rule]bool, len(ls.prefixRules[i]))
		for r := range ls.prefixRules[i] {
			next[r] = true
		}
		if r := ls.chunks[i].Rule; r != nil {
			next[r] = true
		}
		ls.prefixRules[i+1] = next
	}

	ls.suffixRules[ls.n] = map[rule.Rule]bool{}
	for i := ls.n - 1; i >= 0; i-- {
		next := make(map[rule.Rule]bool, len(ls.suffixRules[i+1]))
		for r := range ls.suffixRules[i+1] {
			next[r] = true
		}
		// The sentinel chunk (index n-1) is excluded from suffixRules per
		// spec.md §4.3: "the last chunk's rule is a sentinel and excluded."
		if i < ls.n-1 {
			if r := ls.chunks[i].Rule; r != nil {
				next[r] = true
			}
		}
		ls.suffixRules[i] = next
	}
}

// Apply runs the search and writes the rendered, best-split text to w.
func (ls *LineSplitter) Apply(w io.Writer) (Result, error) {
	initial := prefix.Initial(ls.indent, ls.opts.SpacesPerIndent)

	best, ok := ls.findBestSplits(initial)
	if !ok {
		best = splitset.Empty()
	}
	cost := ls.evaluateCost(initial, best)

	cw := &countingWriter{w: w}
	sel := &selectionState{}
	ls.render(cw, initial, best, sel)
	if cw.err != nil {
		return Result{}, cw.err
	}

	return Result{
		Cost:           cost,
		SelectionStart: sel.start,
		SelectionEnd:   sel.end,
		HasSelection:   sel.has,
	}, nil
}
