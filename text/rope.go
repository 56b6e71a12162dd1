// Package text provides Rope, the text container the formatter and file
// I/O pass documents through: a Rope is a string with an io.Reader /
// io.ReaderAt view over it. The teacher's rope.Rope is an editable,
// persistent tree that rebalances itself as it grows; nothing on
// splitfmt's path ever builds one up out of edits — a file is read whole,
// formatted, and written back out — so Rope here stays a leaf, not a tree.
package text

import "io"

// Rope holds a span of text.
type Rope struct {
	content string
}

// New returns an empty Rope.
func New() Rope {
	return Rope{}
}

// NewString returns a Rope holding the contents of s.
func NewString(s string) Rope {
	return Rope{content: s}
}

// String returns the rope's contents.
func (rope Rope) String() string {
	return rope.content
}

// Length returns the rope's length in bytes.
func (rope Rope) Length() int {
	return len(rope.content)
}

// Reader returns an io.Reader over rope starting at offset.
func (rope Rope) Reader(offset int) *Reader {
	return &Reader{rope: rope, position: int64(offset)}
}

// ReadAt implements io.ReaderAt.
func (rope Rope) ReadAt(p []byte, off int64) (n int, err error) {
	o := int(off)
	if o >= len(rope.content) {
		return 0, io.EOF
	}
	n = copy(p, rope.content[o:])
	if n < len(p) {
		err = io.EOF
	}
	return n, err
}

// Reader adapts a Rope to io.Reader, tracking a read cursor across calls.
type Reader struct {
	rope     Rope
	position int64
}

func (r *Reader) Read(p []byte) (n int, err error) {
	n, err = r.rope.ReadAt(p, r.position)
	r.position += int64(n)
	return n, err
}
