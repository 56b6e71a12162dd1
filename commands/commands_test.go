package commands

import (
	"io"
	"log"
	"testing"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestExecRunsExactMatch(t *testing.T) {
	c := NewCommands(testLogger())
	ran := false
	c.Register("format", func() { ran = true })

	c.Exec("format")
	if !ran {
		t.Fatalf("expected the registered command to run")
	}
}

func TestExecRunsLongestPrefixMatch(t *testing.T) {
	c := NewCommands(testLogger())
	var which string
	c.Register("format", func() { which = "format" })
	c.Register("formfeed", func() { which = "formfeed" })

	c.Exec("formf")
	if which != "formfeed" {
		t.Fatalf("Exec(%q) ran %q, want formfeed", "formf", which)
	}
}

func TestExecUnknownCommandIsNoop(t *testing.T) {
	c := NewCommands(testLogger())
	ran := false
	c.Register("format", func() { ran = true })

	c.Exec("reload")
	if ran {
		t.Fatalf("expected no command to run for an unregistered prefix")
	}
}
