package files

import (
	"path/filepath"
	"testing"

	"splitfmt/text"
)

func TestWriteThenRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")

	want := "line one\nline two\n"
	rope := text.NewString(want)
	if err := Write(path, rope); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.String() != want {
		t.Fatalf("Read() = %q, want %q", got.String(), want)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected an error reading a missing file")
	}
}
