// Package batch implements LineWriter: the façade that turns one long chunk
// stream into independent batches, hardens anything too large to search
// exhaustively, and stitches each batch's splitter output back together
// (spec.md §4.7).
package batch

import (
	"io"
	"log"

	"splitfmt/chunk"
	"splitfmt/splitter"
)

// Options carries the same page-layout constants splitter.Options does, plus
// the façade's own preemption knobs.
type Options struct {
	SpacesPerIndent  int
	OverflowCharCost int
	PageWidth        int
	LineEnding       string

	// DisablePreemption turns off the width-based rule hardening pass
	// (spec.md §9 open question 1), so callers can compare the preempted
	// and exhaustive-search output on the same input.
	DisablePreemption bool

	// PreemptionValueProduct is the numValues-product threshold that
	// triggers a preemption scan. Zero means the spec default, 4096.
	PreemptionValueProduct int
}

// DefaultOptions matches spec.md's stated constants.
func DefaultOptions() Options {
	return Options{
		SpacesPerIndent:        2,
		OverflowCharCost:       100,
		PageWidth:              80,
		LineEnding:             "\n",
		PreemptionValueProduct: 4096,
	}
}

func (o Options) splitterOptions() splitter.Options {
	return splitter.Options{SpacesPerIndent: o.SpacesPerIndent, OverflowCharCost: o.OverflowCharCost}
}

func (o Options) product() int {
	if o.PreemptionValueProduct > 0 {
		return o.PreemptionValueProduct
	}
	return 4096
}

// LineWriter is the batch façade. One instance can drive any number of
// Write calls; it carries no per-call state.
type LineWriter struct {
	opts    Options
	logger  *log.Logger
	verbose bool
}

// New returns a LineWriter. logger may be nil, in which case log.Default is
// used. verbose gates the extra diagnostic lines the façade emits when it
// hardens a rule or preempts a batch (spec.md §3, "Verbose flag").
func New(opts Options, logger *log.Logger, verbose bool) *LineWriter {
	if logger == nil {
		logger = log.Default()
	}
	return &LineWriter{opts: opts, logger: logger, verbose: verbose}
}

func (lw *LineWriter) logf(format string, args ...any) {
	if lw.verbose {
		lw.logger.Printf(format, args...)
	}
}

// Write cuts chunks into independent batches at safe hard splits, hardens
// and flattens each one, runs it through a fresh splitter.LineSplitter, and
// writes the stitched result to w. The returned cost is the sum of every
// batch's own cost.
func (lw *LineWriter) Write(w io.Writer, chunks []*chunk.Chunk) (int, error) {
	if len(chunks) == 0 {
		return 0, nil
	}

	bookkeepRules(chunks)
	cuts := findCutPoints(chunks)

	totalCost := 0
	start := 0
	for _, cut := range cuts {
		segment := chunks[start:cut]
		cutChunk := chunks[cut]

		cost, err := lw.runBatch(w, segment)
		if err != nil {
			return totalCost, err
		}
		totalCost += cost

		nl := lw.opts.LineEnding
		if cutChunk.IsDouble {
			nl += lw.opts.LineEnding
		}
		if _, err := io.WriteString(w, nl); err != nil {
			return totalCost, err
		}

		start = cut + 1
	}

	cost, err := lw.runBatch(w, chunks[start:])
	if err != nil {
		return totalCost, err
	}
	return totalCost + cost, nil
}

// runBatch prepares (flattens, preempts) and formats one batch. segment must
// not include a trailing sentinel unless it is already a complete batch
// ending one; a rule-less empty-text Chunk is appended when needed.
func (lw *LineWriter) runBatch(w io.Writer, segment []*chunk.Chunk) (int, error) {
	batchChunks := ensureSentinel(segment)
	if len(batchChunks) == 1 {
		return 0, nil // a bare cut with nothing between it and the previous one
	}

	flattenNesting(batchChunks)
	lw.preempt(batchChunks)

	ls := splitter.New(lw.opts.LineEnding, lw.opts.PageWidth, batchChunks, 0, lw.opts.splitterOptions())
	res, err := ls.Apply(w)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

func ensureSentinel(segment []*chunk.Chunk) []*chunk.Chunk {
	if len(segment) > 0 && segment[len(segment)-1].Rule == nil {
		return segment
	}
	out := make([]*chunk.Chunk, len(segment)+1)
	copy(out, segment)
	out[len(segment)] = chunk.Sentinel()
	return out
}
