package splitter

import (
	"io"
	"strings"

	"splitfmt/chunk"
	"splitfmt/prefix"
	"splitfmt/splitset"
)

// countingWriter tracks how many bytes this render has written so selection
// offsets can be reported as positions within that output. It starts at
// zero and knows nothing of what the underlying writer held before.
type countingWriter struct {
	w   io.Writer
	n   int
	err error
}

func (cw *countingWriter) WriteString(s string) {
	if cw.err != nil || s == "" {
		return
	}
	written, err := io.WriteString(cw.w, s)
	cw.n += written
	if err != nil {
		cw.err = err
	}
}

// selectionState accumulates the single selection offset pair a render may
// report, per spec.md §6 ("Selection offsets are absolute positions").
type selectionState struct {
	start, end int
	has        bool
}

func (s *selectionState) record(start, end int) {
	s.start, s.end = start, end
	s.has = true
}

// render walks chunks[p.Length(), n) and writes the chosen rendering
// (spec.md §4.6).
func (ls *LineSplitter) render(w *countingWriter, p prefix.LinePrefix, splits splitset.SplitSet, sel *selectionState) {
	w.WriteString(strings.Repeat(" ", p.Column()))
	col := p.Column()

	for i := p.Length(); i < ls.n; i++ {
		c := ls.chunks[i]
		ls.emitChunk(w, c, sel)
		col += c.Len()

		if len(c.BlockChunks) > 0 {
			if i < ls.n-1 && splits.ShouldSplitAt(i) {
				// col is the column the chunk's own text (and whatever
				// opening delimiter it carries) ends at — the key formatBlock
				// expects (spec.md §4.5).
				block := ls.formatBlock(i, col)
				start := w.n
				w.WriteString(block.text)
				if block.hasSel {
					sel.record(start+block.selStart, start+block.selEnd)
				}
			} else {
				col = ls.emitInlineBlock(w, c.BlockChunks, sel, col)
			}
		}

		if i == ls.n-1 {
			break
		}

		if splits.ShouldSplitAt(i) {
			nl := ls.lineEnding
			if c.IsDouble {
				nl += ls.lineEnding
			}
			w.WriteString(nl)
			w.WriteString(strings.Repeat(" ", splits.GetColumn(i)))
			col = splits.GetColumn(i)
		} else if c.SpaceWhenUnsplit {
			w.WriteString(" ")
			col++
		}
	}
}

// emitInlineBlock renders a block's chunks with no splits at all — every
// chunk stays on the current line, separated only by SpaceWhenUnsplit
// (spec.md §4.6, "emit the block inlined").
func (ls *LineSplitter) emitInlineBlock(w *countingWriter, chunks []*chunk.Chunk, sel *selectionState, col int) int {
	n := len(chunks)
	for i, c := range chunks {
		ls.emitChunk(w, c, sel)
		col += c.Len()
		if len(c.BlockChunks) > 0 {
			col = ls.emitInlineBlock(w, c.BlockChunks, sel, col)
		}
		if i < n-1 && c.SpaceWhenUnsplit {
			w.WriteString(" ")
			col++
		}
	}
	return col
}

func (ls *LineSplitter) emitChunk(w *countingWriter, c *chunk.Chunk, sel *selectionState) {
	start := w.n
	w.WriteString(c.Text())
	if c.HasSelection {
		sel.record(start+c.SelectionStart, start+c.SelectionEnd)
	}
}
