// Package chunk defines the atomic unit the splitter works over: a run of
// text plus the metadata that governs whether a newline follows it.
package chunk

import "splitfmt/rule"

// Chunk is one piece of formatted output. Its Rule field is set once, by
// whatever produced the batch, and never changes for the lifetime of the
// batch (spec.md §3 invariant). Rule may be nil only on the final sentinel
// chunk of a batch.
type Chunk struct {
	text string

	Rule  rule.Rule
	Spans []*rule.Span

	// BlockChunks is a complete, self-contained batch forming a nested
	// block (e.g. a function literal body). Empty for ordinary chunks.
	BlockChunks []*Chunk

	// SpaceWhenUnsplit: if this chunk's split collapses, emit a single
	// space before the next chunk.
	SpaceWhenUnsplit bool

	// IsDouble: when this chunk splits, emit two newlines instead of one.
	IsDouble bool

	// FlushLeft: the line following this chunk's split ignores
	// indentation (used for flush-left block bodies).
	FlushLeft bool

	// IsHardSplit marks a chunk whose split is unconditional, either
	// because it was produced that way or because rule hardening
	// (batch.hardenRule) forced it.
	IsHardSplit bool

	// SelectionStart/SelectionEnd are optional byte offsets within Text,
	// passed through to the rendered output's absolute offsets.
	SelectionStart int
	SelectionEnd   int
	HasSelection   bool

	// UnsplitBlockLength is the horizontal width BlockChunks would add if
	// rendered inline (no split).
	UnsplitBlockLength int

	// Nesting is the expression-nesting depth at this chunk.
	Nesting int

	// AbsoluteIndent, when non-zero, overrides the indent column a split
	// after this chunk would otherwise compute from Nesting. Producer-set;
	// the engine only reads it (see prefix.Split).
	AbsoluteIndent int
}

// New returns a Chunk with the given text and no further configuration. Most
// fields keep their zero value, which is always the "do nothing extra"
// setting (no space, no double newline, no selection, nesting 0).
func New(text string, r rule.Rule) *Chunk {
	return &Chunk{text: text, Rule: r}
}

// Sentinel returns the final, rule-less chunk every batch must end with
// (spec.md §6: "the last chunk is a sentinel carrying no meaningful text or
// rule").
func Sentinel() *Chunk {
	return &Chunk{}
}

func (c *Chunk) Text() string { return c.text }

func (c *Chunk) Len() int { return len([]rune(c.text)) }

// WithSelection marks the chunk as carrying a selection offset pair, both
// relative to the chunk's own Text.
func (c *Chunk) WithSelection(start, end int) *Chunk {
	c.SelectionStart, c.SelectionEnd = start, end
	c.HasSelection = true
	return c
}
