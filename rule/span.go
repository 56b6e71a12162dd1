package rule

// Span is a cost-carrying interval over chunks. A Span contributes its Cost
// at most once per solution, no matter how many chunks it covers actually
// split — the accumulator in splitter.evaluateCost dedupes by identity.
type Span struct {
	Cost int
}

// NewSpan allocates a Span with the given cost. Spans are compared by
// pointer identity (the same Span value may be attached to many chunks), so
// two spans with equal Cost are still distinct unless they share an address.
func NewSpan(cost int) *Span {
	return &Span{Cost: cost}
}
