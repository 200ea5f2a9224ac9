package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// State of the capture loop. TERMINATED is absorbing: a Loop cannot be
// run twice.
type State int

const (
	// StateRunning is the initial state while the loop is live.
	StateRunning State = iota

	// StateTerminated is reached on quit, source failure, or cancellation.
	StateTerminated
)

// Result summarizes a finished run.
type Result struct {
	// Saved is the number of frames written successfully.
	Saved int

	// Failed is the number of save attempts that errored.
	Failed int
}

// DefaultPollTimeout bounds the keyboard poll per iteration so the next
// frame pull is never stalled beyond one display refresh interval.
const DefaultPollTimeout = 10 * time.Millisecond

// Loop drives the read-display-decide-act cycle until the quit key is
// pressed or the source fails. It owns the source and the display for
// the duration of Run and releases both exactly once on every exit path,
// including error paths.
type Loop struct {
	src    Source
	disp   Display
	store  Store
	namer  *Namer
	poll   time.Duration
	logger *slog.Logger
	state  State

	// OnSave, if set, is called after each successful save.
	OnSave func(path string)

	// OnSaveError, if set, is called after each failed save.
	OnSaveError func(path string, err error)
}

// Option configures a Loop.
type Option func(*Loop)

// WithPollTimeout sets the keyboard poll timeout per iteration.
func WithPollTimeout(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.poll = d
		}
	}
}

// WithLogger sets the logger used for per-iteration events.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoop creates a capture loop over an already-open source and display.
// Ownership of both transfers to the loop; Run closes them.
func NewLoop(src Source, disp Display, store Store, namer *Namer, opts ...Option) *Loop {
	l := &Loop{
		src:    src,
		disp:   disp,
		store:  store,
		namer:  namer,
		poll:   DefaultPollTimeout,
		logger: slog.Default(),
		state:  StateRunning,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current loop state.
func (l *Loop) State() State {
	return l.state
}

// Run executes the loop until termination. A nil error means a clean quit
// (quit key or context cancellation); a non-nil error means the frame
// source failed mid-run. Save failures never terminate the loop; they are
// logged and counted in the Result.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	var res Result

	// TERMINATED is absorbing; a loop cannot be restarted.
	if l.state == StateTerminated {
		return res, errors.New("capture loop already terminated")
	}

	defer func() {
		l.state = StateTerminated
		if err := l.disp.Close(); err != nil {
			l.logger.Warn("display close failed", "error", err)
		}
		if err := l.src.Close(); err != nil {
			l.logger.Warn("camera close failed", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("capture loop cancelled")
			return res, nil
		default:
		}

		frame, err := l.src.NextFrame()
		if err != nil {
			return res, fmt.Errorf("frame source: %w", err)
		}

		l.disp.Show(frame)

		switch key := l.disp.WaitKey(l.poll); key {
		case KeyCapture:
			path := l.namer.Next()
			if err := l.store.Save(frame, path); err != nil {
				res.Failed++
				l.logger.Error("frame save failed", "path", path, "error", err)
				if l.OnSaveError != nil {
					l.OnSaveError(path, err)
				}
			} else {
				res.Saved++
				l.logger.Info("frame captured", "path", path)
				if l.OnSave != nil {
					l.OnSave(path)
				}
			}
		case KeyQuit:
			l.logger.Info("quit requested")
			if err := frame.Close(); err != nil {
				l.logger.Warn("frame close failed", "error", err)
			}
			return res, nil
		}

		if err := frame.Close(); err != nil {
			l.logger.Warn("frame close failed", "error", err)
		}
	}
}
