package splitter

import "strings"

// blockKey identifies one nested-block sub-format: which chunk owns the
// block, and the column its opening delimiter sits at (spec.md §4.5).
type blockKey struct {
	index  int
	column int
}

type blockResult struct {
	text     string
	cost     int
	selStart int
	selEnd   int
	hasSel   bool
}

// formatBlock runs (or returns the cached result of) a sub-splitter over
// chunk[index].BlockChunks, indented to column. Cached for the lifetime of
// this LineSplitter only (spec.md §4.5, §9.2: no cross-batch cache).
func (ls *LineSplitter) formatBlock(index, column int) blockResult {
	key := blockKey{index, column}
	if cached, ok := ls.blockCache[key]; ok {
		return cached
	}

	c := ls.chunks[index]
	indent := 1
	if c.FlushLeft {
		indent = 0
	}

	sub := New(ls.lineEnding, ls.pageWidth-column, c.BlockChunks, indent, ls.opts)
	var buf strings.Builder
	res, _ := sub.Apply(&buf) // strings.Builder never errors

	body := buf.String()
	indented := indentLines(body, column, ls.lineEnding)

	out := blockResult{
		text: ls.lineEnding + indented,
		cost: res.Cost,
	}
	if res.HasSelection {
		lead := len(ls.lineEnding) // out.text is prefixed with one lineEnding before indented
		out.hasSel = true
		out.selStart = lead + shiftSelectionOffset(body, res.SelectionStart, column, ls.lineEnding)
		out.selEnd = lead + shiftSelectionOffset(body, res.SelectionEnd, column, ls.lineEnding)
	}

	ls.blockCache[key] = out
	return out
}

// indentLines prepends column spaces to every non-empty line of s.
func indentLines(s string, column int, lineEnding string) string {
	if column == 0 || s == "" {
		return s
	}
	pad := strings.Repeat(" ", column)
	lines := strings.Split(s, lineEnding)
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, lineEnding)
}

// shiftSelectionOffset translates a byte offset measured in the
// unindented block text s into the equivalent offset after indentLines has
// prepended column spaces to every non-empty line.
func shiftSelectionOffset(s string, offset, column int, lineEnding string) int {
	if column == 0 || offset <= 0 {
		return offset
	}

	lines := strings.Split(s, lineEnding)
	sepLen := len(lineEnding)

	origPos, newPos := 0, 0
	for _, line := range lines {
		lineLen := len(line)
		pad := 0
		if line != "" {
			pad = column
		}

		if offset <= origPos+lineLen {
			return newPos + pad + (offset - origPos)
		}

		origPos += lineLen + sepLen
		newPos += pad + lineLen + sepLen
	}

	return newPos
}
