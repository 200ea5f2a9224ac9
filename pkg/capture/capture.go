// Package capture implements the interactive read-display-decide-act
// cycle at the heart of go-framegrab, plus the timestamped naming scheme
// for saved frames.
//
// The loop is single-threaded and cooperative: each iteration pulls one
// frame, renders it, polls the keyboard for a bounded interval, and acts
// on the result. Camera, window, and storage are abstracted behind small
// interfaces so the loop can be exercised without real hardware.
package capture

import "time"

// Frame is one raster image pulled from a Source. A frame is owned by the
// loop for a single iteration; Close releases the underlying pixel buffer
// and must be called exactly once.
type Frame interface {
	Close() error
}

// Source produces a sequential stream of frames from a camera device.
type Source interface {
	// NextFrame pulls the next frame, blocking until one is available.
	// An error means the device is gone; the loop treats this as fatal.
	NextFrame() (Frame, error)

	// Close releases the device handle.
	// After Close, NextFrame must not be called.
	Close() error
}

// Display renders frames on screen and polls for keyboard input.
type Display interface {
	// Show renders the frame. Fire and forget; there is no failure
	// contract for rendering.
	Show(f Frame)

	// WaitKey polls for at most one key press within the timeout and
	// maps it onto the recognized key set.
	WaitKey(timeout time.Duration) Key

	// Close destroys the window.
	Close() error
}

// Store persists a frame to the given path as a compressed image. From
// the loop's perspective the write is atomic: either a complete file
// appears at path or none does.
type Store interface {
	Save(f Frame, path string) error
}
