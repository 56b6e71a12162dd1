package main

import (
	"bytes"
	"testing"

	"splitfmt/batch"
)

func TestTokenizeSourceEndsWithSentinel(t *testing.T) {
	chunks := tokenizeSource("f(a, b)")
	last := chunks[len(chunks)-1]
	if last.Rule != nil {
		t.Fatalf("expected the final chunk to be a rule-less sentinel")
	}
}

func TestTokenizeSourceEveryChunkHasARule(t *testing.T) {
	chunks := tokenizeSource("f(a, b)\n")
	for i, c := range chunks[:len(chunks)-1] {
		if c.Rule == nil {
			t.Fatalf("chunk %d (%q) has no rule", i, c.Text())
		}
	}
}

func TestTokenizeSourceSplitsBlankLinesIntoHardSeparators(t *testing.T) {
	chunks := tokenizeSource("a := 1\n\nb := 2\n")

	found := false
	for _, c := range chunks {
		if c.IsHardSplit {
			found = true
			if c.Nesting != 0 {
				t.Fatalf("hard separator should sit at nesting 0, got %d", c.Nesting)
			}
		}
	}
	if !found {
		t.Fatalf("expected a hard-split separator between the two blank-line-delimited statements")
	}
}

func TestTokenizeSourceFormatsWithoutError(t *testing.T) {
	chunks := tokenizeSource("func f(firstargument, secondargument int) int {\n\treturn firstargument + secondargument\n}\n")

	var buf bytes.Buffer
	lw := batch.New(batch.DefaultOptions(), nil, false)
	if _, err := lw.Write(&buf, chunks); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected some formatted output")
	}
}

func TestCommaChunksShareOneRulePerBracket(t *testing.T) {
	chunks := tokenizeSource("f(a, b, c)")

	var commaRules []interface{ NumValues() int }
	for _, c := range chunks {
		if c.Text() == "," {
			commaRules = append(commaRules, c.Rule)
		}
	}
	if len(commaRules) != 2 {
		t.Fatalf("expected 2 commas, got %d", len(commaRules))
	}
	if commaRules[0] != commaRules[1] {
		t.Fatalf("expected both commas in the same bracket to share a rule instance")
	}
}
