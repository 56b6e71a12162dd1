// Package rule defines the decision variables the splitter searches over.
//
// A Rule is shared by reference across every Chunk it governs. The splitter
// never mutates a Rule's decision semantics once chunks carrying it reach a
// batch; the batch façade may still flip its Start/End bookkeeping and, for
// pathological input, replace it outright (see package batch, hardenRule).
package rule

// Rule is the only thing the core search demands of a rule implementation.
// Implementations must be comparable so a Rule can be used as a map key:
// two rules are equal iff they are the same object (pointer identity for the
// variants below).
type Rule interface {
	// NumValues is the count of legal values this rule can take, >= 1.
	// Value 0 means "no split" for every variant except HardSplitRule,
	// whose single value always splits.
	NumValues() int

	// Cost is added once to a solution's total cost if any chunk governed by
	// this rule splits.
	Cost() int

	// IsSplit reports whether assigning value to this rule causes chunk to be
	// a line break.
	IsSplit(value int, chunk Splittable) bool

	// Constrain returns the value other must take given that this rule took
	// myValue, or ok=false if this rule imposes no constraint on other.
	Constrain(myValue int, other Rule) (value int, ok bool)

	// ReverseConstrain is Constrain's mirror: given that other took myValue,
	// what must this rule be?
	ReverseConstrain(myValue int, other Rule) (value int, ok bool)

	// SplitsOnInnerRules reports whether a hard split nested inside this
	// rule's range forces this rule to split too.
	SplitsOnInnerRules() bool

	// FullySplitValue is the value meaning "split everywhere this rule
	// governs".
	FullySplitValue() int
}

// Splittable is the subset of chunk.Chunk that Rule.IsSplit needs to see.
// Defined here (rather than imported from package chunk) to avoid an import
// cycle: package chunk references Rule, so Rule cannot reference chunk.Chunk.
type Splittable interface {
	// Text is the chunk's literal text, for rules that key off of it (rare,
	// but the interface doesn't forbid it).
	Text() string
}

// Mutable is the bookkeeping every Rule variant below exposes for the batch
// façade. It is not part of the Rule interface because ordinary consumers
// (the splitter's search) have no business calling these setters: only the
// façade sets Start/End, and only before a single LineSplitter.apply call
// begins.
type Mutable interface {
	Rule
	SetStart(chunkIndex int)
	SetEnd(chunkIndex int)
	GetStart() int
	GetEnd() int
}
