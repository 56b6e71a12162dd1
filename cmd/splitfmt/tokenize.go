package main

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"splitfmt/chunk"
	"splitfmt/rule"
)

// tokenizeSource turns src into a chunk stream the batch façade can format.
// It is a thin demo front end (spec.md scopes real parsing and rule grammar
// out of the core): a chroma lexer supplies the token stream, blank lines
// become hard-split batch boundaries, brackets track nesting depth, and each
// bracketed group gets its own comma rule, shared by every comma directly
// inside it, so "one argument on its own line means all of them are" falls
// out of those commas carrying one SimpleRule value.
func tokenizeSource(src string) []*chunk.Chunk {
	blocks := splitTopLevelBlocks(src)

	var out []*chunk.Chunk
	for i, block := range blocks {
		blockChunks := tokenizeBlock(block)
		if i < len(blocks)-1 {
			blockChunks = blockChunks[:len(blockChunks)-1] // drop this block's own sentinel
			sep := chunk.New("", rule.NewHardSplitRule())
			sep.IsHardSplit = true
			sep.IsDouble = true
			blockChunks = append(blockChunks, sep)
		}
		out = append(out, blockChunks...)
	}
	if len(out) == 0 || out[len(out)-1].Rule != nil {
		out = append(out, chunk.Sentinel())
	}
	return out
}

var blankLineRE = regexp.MustCompile(`\n[ \t]*\n`)

func splitTopLevelBlocks(src string) []string {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return []string{""}
	}
	return blankLineRE.Split(trimmed, -1)
}

func goLexer() chroma.Lexer {
	l := lexers.Get("go")
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

// tokenizeBlock lexes one blank-line-delimited block and returns its chunk
// stream, ending in a sentinel.
func tokenizeBlock(src string) []*chunk.Chunk {
	tokens, err := chroma.Tokenise(goLexer(), nil, src)
	if err != nil {
		tokens = nil
	}

	var chunks []*chunk.Chunk
	nesting := 0
	commaRules := []*rule.SimpleRule{rule.NewSimpleRule(2, 1)}
	// filler governs every chunk that isn't a comma: it only ever takes
	// value 0, so it never itself becomes a line break, but it still
	// satisfies the engine's invariant that every non-sentinel chunk
	// carries a Rule.
	filler := rule.NewSimpleRule(1, 0)

	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			continue
		}
		text := tok.Value
		if strings.TrimSpace(text) == "" {
			continue // source whitespace is not carried through; the splitter decides it
		}

		switch text {
		case "(", "[", "{":
			c := chunk.New(text, filler)
			c.Nesting = nesting
			chunks = append(chunks, c)
			nesting++
			commaRules = append(commaRules, rule.NewSimpleRule(2, 1))
			continue
		case ")", "]", "}":
			nesting--
			if len(commaRules) > 1 {
				commaRules = commaRules[:len(commaRules)-1]
			}
			c := chunk.New(text, filler)
			c.Nesting = nesting
			chunks = append(chunks, c)
			continue
		case ",":
			c := chunk.New(text, commaRules[len(commaRules)-1])
			c.Nesting = nesting
			chunks = append(chunks, c)
			continue
		}

		c := chunk.New(text, filler)
		c.Nesting = nesting
		chunks = append(chunks, c)
	}

	spaceChunks(chunks)
	chunks = append(chunks, chunk.Sentinel())
	return chunks
}

// spaceChunks decides, per adjacent pair, whether an unsplit join needs a
// space: not right after an opening bracket, not right before a closing
// bracket or a comma.
func spaceChunks(chunks []*chunk.Chunk) {
	for i := 0; i < len(chunks)-1; i++ {
		cur, next := chunks[i], chunks[i+1]
		if isOpenBracket(cur.Text()) || isCloseBracket(next.Text()) || next.Text() == "," {
			continue
		}
		cur.SpaceWhenUnsplit = true
	}
}

func isOpenBracket(s string) bool  { return s == "(" || s == "[" || s == "{" }
func isCloseBracket(s string) bool { return s == ")" || s == "]" || s == "}" }
