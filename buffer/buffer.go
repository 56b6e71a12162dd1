// Package buffer holds one or more open source documents as text.Rope
// values, keyed by file path, the way a CLI with more than one open file
// would track them.
package buffer

import (
	"log"

	"splitfmt/files"
	"splitfmt/text"
)

// Document wraps a single text.Rope.
type Document struct {
	Rope text.Rope
}

// NewDocument returns a Document holding s.
func NewDocument(s string) Document {
	return Document{Rope: text.NewString(s)}
}

// String returns the document's full contents.
func (d Document) String() string {
	return d.Rope.String()
}

// Buffer holds every document the demo CLI has open, keyed by file path.
type Buffer struct {
	Open map[string]Document

	log *log.Logger
}

// NewBuffer returns an empty Buffer that logs through logger.
func NewBuffer(logger *log.Logger) *Buffer {
	return &Buffer{Open: make(map[string]Document), log: logger}
}

// OpenFile reads path from disk and records it as an open Document.
func (b *Buffer) OpenFile(path string) error {
	rope, err := files.Read(path)
	if err != nil {
		return err
	}
	b.Open[path] = Document{Rope: rope}
	b.log.Printf("buffer: opened %s (%d bytes)", path, rope.Length())
	return nil
}

// Save writes path's current Document contents back to disk.
func (b *Buffer) Save(path string) error {
	doc, ok := b.Open[path]
	if !ok {
		return nil
	}
	return files.Write(path, doc.Rope)
}

// Set replaces path's Document, opening it if not already tracked.
func (b *Buffer) Set(path string, doc Document) {
	b.Open[path] = doc
}
