// Command splitfmt is a thin demo front end for the line-splitting engine:
// it tokenizes a source file with a chroma lexer, feeds the resulting chunk
// stream through batch.LineWriter, and prints (or watches, displays, or
// serves over a REPL) the result.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"splitfmt/application"
	"splitfmt/batch"

	"github.com/fsnotify/fsnotify"
)

func newLogger() *log.Logger {
	file, err := os.OpenFile("splitfmt.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatal(err)
	}
	return log.New(io.MultiWriter(file), "", log.LstdFlags|log.Lshortfile)
}

func main() {
	watch := flag.Bool("watch", false, "reformat the file to stdout whenever it changes on disk")
	ui := flag.Bool("ui", false, "open an interactive split-pane view instead of printing to stdout")
	repl := flag.Bool("repl", false, "read :format/:cost/:reload/:quit commands from stdin instead of formatting once")
	noPreempt := flag.Bool("no-preempt", false, "disable rule-hardening preemption; compare against the preempted output")
	analyzeDir := flag.String("analyze", "", "format every .go file under this directory and report cost statistics instead of formatting one file")
	verbose := flag.Bool("v", false, "log preemption and rule-hardening decisions")
	flag.Parse()

	logger := newLogger()
	app := application.New(logger)
	opts := app.Config.Format.BatchOptions()
	opts.DisablePreemption = *noPreempt

	if *analyzeDir != "" {
		if err := runAnalyze(*analyzeDir, opts, logger); err != nil {
			log.Fatalf("%+v", err)
		}
		return
	}

	path := flag.Arg(0)
	if path == "" {
		log.Fatal("splitfmt: usage: splitfmt [flags] <file>")
	}

	if err := app.Buffers.OpenFile(path); err != nil {
		log.Fatalf("%+v", err)
	}

	go app.Config.Watch()
	defer app.Quit()

	if *ui {
		if err := runUI(app, path, opts); err != nil {
			log.Fatalf("%+v", err)
		}
		return
	}

	if *watch {
		runWatch(app, path, opts, *verbose, logger)
		return
	}

	if *repl {
		runREPL(app, path, opts, *verbose, logger)
		return
	}

	formatOnce(app, path, opts, *verbose, os.Stdout, logger)
}

func formatOnce(app *application.Application, path string, opts batch.Options, verbose bool, w io.Writer, logger *log.Logger) {
	doc := app.Buffers.Open[path]
	lw := batch.New(opts, logger, verbose)

	chunks := tokenizeSource(doc.String())
	cost, err := lw.Write(w, chunks)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	logger.Printf("splitfmt: formatted %s (cost=%d)", path, cost)
}

// runWatch reformats path to stdout every time fsnotify reports it changed,
// until the process is interrupted.
func runWatch(app *application.Application, path string, opts batch.Options, verbose bool, logger *log.Logger) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		log.Fatalf("%+v", err)
	}

	formatOnce(app, path, opts, verbose, os.Stdout, logger)
	for event := range watcher.Events {
		if !event.Has(fsnotify.Write) {
			continue
		}
		if err := app.Buffers.OpenFile(path); err != nil {
			logger.Printf("splitfmt: reread %s: %v", path, err)
			continue
		}
		fmt.Println("---")
		formatOnce(app, path, opts, verbose, os.Stdout, logger)
	}
}
