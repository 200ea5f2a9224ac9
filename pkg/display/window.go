// Package display renders frames in an on-screen preview window and
// polls the keyboard through the same window handle.
package display

import (
	"time"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-framegrab/pkg/camera"
	"github.com/teslashibe/go-framegrab/pkg/capture"
)

// Key codes reported by the window for the recognized bindings.
const (
	codeNone   = -1
	codeEscape = 27
	codeSpace  = 32
	codeQ      = 'q'
)

// Window is a gocv-backed capture.Display.
type Window struct {
	win *gocv.Window
}

// NewWindow creates a named preview window.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// Show implements capture.Display. Frames that did not come from the
// camera package carry no pixel data we can render and are skipped.
func (w *Window) Show(f capture.Frame) {
	cf, ok := f.(*camera.Frame)
	if !ok {
		return
	}
	w.win.IMShow(*cf.Mat())
}

// WaitKey implements capture.Display. It blocks for at most the timeout
// and maps the raw key code onto the recognized key set.
func (w *Window) WaitKey(timeout time.Duration) capture.Key {
	ms := int(timeout / time.Millisecond)
	if ms < 1 {
		ms = 1
	}

	switch code := w.win.WaitKey(ms); code {
	case codeNone:
		return capture.KeyNone
	case codeSpace:
		return capture.KeyCapture
	case codeQ, codeEscape:
		return capture.KeyQuit
	default:
		return capture.KeyOther
	}
}

// Close implements capture.Display.
func (w *Window) Close() error {
	return w.win.Close()
}
