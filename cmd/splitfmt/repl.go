package main

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"

	"splitfmt/application"
	"splitfmt/batch"
	"splitfmt/commands"
)

// runREPL reads lines of the form ":format", ":cost", ":reload", ":quit"
// from stdin and dispatches them through commands.Commands by longest
// unambiguous prefix, so ":f" and ":format" run the same command as long
// as nothing else registered also starts with "f". It exits on ":quit" or
// EOF.
func runREPL(app *application.Application, path string, opts batch.Options, verbose bool, logger *log.Logger) {
	cmds := commands.NewCommands(logger)
	lw := batch.New(opts, logger, verbose)
	quit := false

	cmds.Register("format", func() {
		doc := app.Buffers.Open[path]
		chunks := tokenizeSource(doc.String())
		if _, err := lw.Write(os.Stdout, chunks); err != nil {
			fmt.Fprintf(os.Stdout, "format: %v\n", err)
		}
	})
	cmds.Register("cost", func() {
		doc := app.Buffers.Open[path]
		chunks := tokenizeSource(doc.String())
		var discard bytes.Buffer
		cost, err := lw.Write(&discard, chunks)
		if err != nil {
			fmt.Fprintf(os.Stdout, "cost: %v\n", err)
			return
		}
		fmt.Fprintf(os.Stdout, "cost=%d\n", cost)
	})
	cmds.Register("reload", func() {
		if err := app.Buffers.OpenFile(path); err != nil {
			fmt.Fprintf(os.Stdout, "reload: %v\n", err)
		}
	})
	cmds.Register("quit", func() { quit = true })

	fmt.Fprint(os.Stdout, "> ")
	scanner := bufio.NewScanner(os.Stdin)
	for !quit && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, ":"):
			cmds.Exec(strings.TrimPrefix(line, ":"))
		default:
			fmt.Fprintln(os.Stdout, "splitfmt: commands start with ':' (try :format, :cost, :reload, :quit)")
		}
		if !quit {
			fmt.Fprint(os.Stdout, "> ")
		}
	}
}
