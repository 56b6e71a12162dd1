package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"splitfmt/application"
	"splitfmt/batch"
	"splitfmt/layout"
)

var defaultStyle = tcell.StyleDefault

// runUI opens an interactive, split-pane view of path: source on the left,
// formatted output on the right, and a status line reporting the batch
// façade's cost, using layout.SplitPanes to lay out the panes. The panes are
// redrawn from the buffer as opened on resize and on Ctrl-L; the source file
// is not re-read while the view is open.
func runUI(app *application.Application, path string, opts batch.Options) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	s.SetStyle(defaultStyle)
	s.EnableMouse()
	s.Clear()

	app.Screen = s
	width, height := s.Size()
	app.Window.Update(width, height)

	lw := batch.New(opts, nil, false)

	draw := func() {
		app.Window.Update(s.Size())
		s.Clear()

		doc, ok := app.Buffers.Open[path]
		source := ""
		if ok {
			source = doc.String()
		}

		var formatted bytes.Buffer
		cost, ferr := lw.Write(&formatted, tokenizeSource(source))
		status := fmt.Sprintf("cost=%d", cost)
		if ferr != nil {
			status = fmt.Sprintf("error: %v", ferr)
		}

		lay := layout.SplitPanes(
			func(d layout.Dimensions) { drawLines(s, d, source) },
			func(d layout.Dimensions) { drawLines(s, d, formatted.String()) },
			func(d layout.Dimensions) { drawLines(s, d, status) },
			1,
		)
		lay.StartLayouting(app.Window.Width, app.Window.Height)
		s.Show()
	}

	draw()
	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.Sync()
			draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
			if ev.Key() == tcell.KeyCtrlL {
				s.Sync()
				draw()
			}
		}
	}
}

// drawLines fills dims with lines, one screen row per line, clipped to
// dims' width and height.
func drawLines(s tcell.Screen, dims layout.Dimensions, text string) {
	xmin, ymin := dims.Origin.X, dims.Origin.Y
	lines := strings.Split(text, "\n")
	for row := 0; row < dims.Height; row++ {
		for col := 0; col < dims.Width; col++ {
			s.SetContent(xmin+col, ymin+row, ' ', nil, defaultStyle)
		}
		if row >= len(lines) {
			continue
		}
		for col, r := range []rune(lines[row]) {
			if col >= dims.Width {
				break
			}
			s.SetContent(xmin+col, ymin+row, r, nil, defaultStyle)
		}
	}
}
