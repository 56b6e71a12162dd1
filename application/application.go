// Package application bundles the demo CLI's screen, config, and open
// buffers the way the teacher's own (unwired) application.go intended to,
// minus the full-editor cursor/input handling spec.md scopes out: this demo
// only ever displays a buffer and its formatted twin, never edits one.
package application

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"splitfmt/buffer"
	"splitfmt/config"
)

// Window is the terminal's current size, refreshed on every resize event.
type Window struct {
	Width, Height int
}

func (w *Window) Update(width, height int) {
	w.Width, w.Height = width, height
}

// Application owns everything the -ui and -watch modes share: a screen
// (nil outside -ui), the loaded config, and the set of open buffers.
type Application struct {
	Screen  tcell.Screen
	Config  *config.Config
	Buffers *buffer.Buffer
	Window  *Window

	log *log.Logger
}

// New returns an Application with an empty buffer set and a freshly loaded
// config. Screen is left nil; callers that need -ui set it before use.
func New(logger *log.Logger) *Application {
	cfg := config.New(logger)
	cfg.Load()
	return &Application{
		Config:  cfg,
		Buffers: buffer.NewBuffer(logger),
		Window:  &Window{},
		log:     logger,
	}
}

// Quit stops the config watcher and finalizes the screen, if one was opened.
// Any panic in progress is re-raised after cleanup so it still leaves a
// diagnostic trace, matching the teacher's main.go quit.
func (app *Application) Quit() {
	maybePanic := recover()

	app.Config.Close()
	if app.Screen != nil {
		app.Screen.Fini()
	}

	if maybePanic != nil {
		panic(maybePanic)
	}
}
