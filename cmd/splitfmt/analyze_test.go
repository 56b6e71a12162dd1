package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"splitfmt/batch"
)

func TestRunAnalyzeReportsNoErrorOnRealFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.go": "package a\n\nfunc F(x, y int) int {\n\treturn x + y\n}\n",
		"b.go": "package a\n\nfunc G() {}\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	logger := log.New(io.Discard, "", 0)
	if err := runAnalyze(dir, batch.DefaultOptions(), logger); err != nil {
		t.Fatalf("runAnalyze: %v", err)
	}
}

func TestRunAnalyzeOnEmptyDirIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	logger := log.New(io.Discard, "", 0)
	if err := runAnalyze(dir, batch.DefaultOptions(), logger); err != nil {
		t.Fatalf("runAnalyze: %v", err)
	}
}
