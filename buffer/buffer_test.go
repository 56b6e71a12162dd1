package buffer

import (
	"io"
	"log"
	"testing"
)

func expectString(a, b string, t *testing.T) {
	if a != b {
		t.Fatalf("expected '%v', got '%v'", a, b)
	}
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestNewDocumentString(t *testing.T) {
	doc := NewDocument("foo\nbar\n")
	expectString("foo\nbar\n", doc.String(), t)
}

func TestBufferSetTracksDocument(t *testing.T) {
	b := NewBuffer(testLogger())
	b.Set("scratch.txt", NewDocument("hello"))

	doc, ok := b.Open["scratch.txt"]
	if !ok {
		t.Fatalf("expected scratch.txt to be tracked")
	}
	expectString("hello", doc.String(), t)
}
