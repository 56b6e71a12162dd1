// Package prefix implements LinePrefix: the immutable description of "how we
// got here" that keys the splitter's memoization table (spec.md §3, §4.2).
package prefix

import (
	"sort"

	"splitfmt/chunk"
	"splitfmt/rule"
)

// BoundKind tags how a rule is bound within a prefix. Modeled as a tagged
// variant rather than the source's in-band -1 sentinel (spec.md §9) so a
// legitimate rule value can never collide with "must split, not yet chosen".
type BoundKind int

const (
	Unbound      BoundKind = iota // rule imposes no constraint here
	MustSplitAny                  // rule must split; which non-zero value is still open
	Bound                         // rule is pinned to Value
)

// RuleBound is one rule's binding within a LinePrefix.
type RuleBound struct {
	Kind  BoundKind
	Value int
}

// BoundValue returns a Bound RuleBound pinned to v.
func BoundValue(v int) RuleBound { return RuleBound{Kind: Bound, Value: v} }

// MustSplit returns a MustSplitAny RuleBound.
func MustSplit() RuleBound { return RuleBound{Kind: MustSplitAny} }

// LinePrefix is immutable: Length chunks consumed, Column the starting
// column of the next line, RuleValues the bindings fixed so far. Equality
// and hashing use exactly these three fields (spec.md §3).
type LinePrefix struct {
	baseIndent int // the batch's starting column; constant across a batch
	length     int
	column     int
	ruleValues map[rule.Rule]RuleBound
	hash       uint64
}

// Initial returns the starting LinePrefix for a batch: no chunks consumed,
// the line begins at indent*spacesPerIndent, no rule bindings.
func Initial(indent, spacesPerIndent int) LinePrefix {
	col := indent * spacesPerIndent
	p := LinePrefix{baseIndent: col, length: 0, column: col}
	p.hash = computeHash(p.length, p.column, p.ruleValues)
	return p
}

func (p LinePrefix) Length() int { return p.length }
func (p LinePrefix) Column() int { return p.column }

// Value looks up the binding for r, reporting ok=false if r is unbound.
func (p LinePrefix) Value(r rule.Rule) (RuleBound, bool) {
	b, ok := p.ruleValues[r]
	return b, ok
}

// Extend returns a prefix one chunk longer with no split: the column is
// unchanged and the rule bindings are replaced wholesale by newRuleValues
// (the caller, splitter.advancePrefix, has already folded the old bindings
// in where they still apply).
func (p LinePrefix) Extend(newRuleValues map[rule.Rule]RuleBound) LinePrefix {
	out := LinePrefix{
		baseIndent: p.baseIndent,
		length:     p.length + 1,
		column:     p.column,
		ruleValues: newRuleValues,
	}
	out.hash = computeHash(out.length, out.column, out.ruleValues)
	return out
}

// indentCandidates returns the distinct columns a line starting after c's
// split could legally begin at. A chunk with FlushLeft always starts at
// column 0. A chunk with a non-zero AbsoluteIndent pins the column exactly.
// Otherwise the candidates are the batch's base indent advanced by c's own
// nesting depth, or one level deeper — the two common alignments a nested
// expression's continuation line takes (even with c's own indentation, or
// indented one further to set it apart from a sibling at the same depth).
func indentCandidates(baseIndent, spacesPerIndent int, c *chunk.Chunk) []int {
	if c.FlushLeft {
		return []int{0}
	}
	if c.AbsoluteIndent != 0 {
		return []int{c.AbsoluteIndent}
	}
	shallow := baseIndent + spacesPerIndent*c.Nesting
	deep := baseIndent + spacesPerIndent*(c.Nesting+1)
	if shallow == deep {
		return []int{shallow}
	}
	return []int{shallow, deep}
}

// Split returns one LinePrefix per legal indentation the new line (the one
// starting right after chunk splits) could use, each one chunk longer than
// the receiver and carrying newRuleValues. spacesPerIndent must be the same
// value used to build the batch's Initial prefix.
func (p LinePrefix) Split(c *chunk.Chunk, newRuleValues map[rule.Rule]RuleBound, spacesPerIndent int) []LinePrefix {
	cols := indentCandidates(p.baseIndent, spacesPerIndent, c)
	out := make([]LinePrefix, 0, len(cols))
	for _, col := range cols {
		next := LinePrefix{
			baseIndent: p.baseIndent,
			length:     p.length + 1,
			column:     col,
			ruleValues: newRuleValues,
		}
		next.hash = computeHash(next.length, next.column, next.ruleValues)
		out = append(out, next)
	}
	return out
}

// Hash returns the prefix's precomputed hash, safe to use as a Go map key
// component or to pre-bucket prefixes before an Equal check. LinePrefix
// itself is not comparable with == because ruleValues is a map, so the
// splitter's memo buckets entries by Hash and picks the match with Equal;
// see splitter.memoLookup.
func (p LinePrefix) Hash() uint64 { return p.hash }

// Equal reports whether two prefixes are equal by {length, column,
// ruleValues}, the equality the spec requires for memoization correctness.
func (p LinePrefix) Equal(other LinePrefix) bool {
	if p.length != other.length || p.column != other.column {
		return false
	}
	if len(p.ruleValues) != len(other.ruleValues) {
		return false
	}
	for r, b := range p.ruleValues {
		ob, ok := other.ruleValues[r]
		if !ok || ob != b {
			return false
		}
	}
	return true
}

// computeHash combines length, column, and the rule->bound multiset into a
// single hash. The rule map has no defined iteration order, so entries are
// combined with an order-independent operator (sorted by a per-entry
// fingerprint, then mixed) rather than folded in map-iteration order.
func computeHash(length, column int, ruleValues map[rule.Rule]RuleBound) uint64 {
	h := mix(mix(1469598103934665603, uint64(length)), uint64(column))
	if len(ruleValues) == 0 {
		return h
	}
	fingerprints := make([]uint64, 0, len(ruleValues))
	for r, b := range ruleValues {
		fingerprints = append(fingerprints, mix(mix(rulePointer(r), uint64(b.Kind)), uint64(b.Value)))
	}
	sort.Slice(fingerprints, func(i, j int) bool { return fingerprints[i] < fingerprints[j] })
	for _, fp := range fingerprints {
		h = mix(h, fp)
	}
	return h
}

// mix is a single FNV-1a style step; cheap and good enough for a memo-table
// bucket hash, not a cryptographic property.
func mix(h, v uint64) uint64 {
	h ^= v
	h *= 1099511628211
	return h
}

func rulePointer(r rule.Rule) uint64 {
	return ruleAddr(r)
}
