package store

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SavedFrame is one frame written during the session.
type SavedFrame struct {
	Name  string    `json:"name"`
	At    time.Time `json:"at"`
	Bytes int64     `json:"bytes"`
}

// Stats is a snapshot of session counters for the summary and the
// dashboard.
type Stats struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Saved     int       `json:"saved"`
	Failed    int       `json:"failed"`
	Bytes     int64     `json:"bytes"`
}

// Session tracks what a single run of the grabber has written. The
// capture loop records into it; the dashboard reads from it, so access
// is guarded.
type Session struct {
	id      string
	started time.Time

	mu     sync.RWMutex
	frames []SavedFrame
	failed int
	bytes  int64
}

// NewSession creates a session with a fresh run ID.
func NewSession() *Session {
	return &Session{
		id:      uuid.NewString(),
		started: time.Now(),
	}
}

// ID returns the session's run ID.
func (s *Session) ID() string {
	return s.id
}

// RecordSave registers a successfully written frame.
func (s *Session) RecordSave(path string) {
	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, SavedFrame{
		Name:  filepath.Base(path),
		At:    time.Now(),
		Bytes: size,
	})
	s.bytes += size
}

// RecordFailure registers a failed save attempt.
func (s *Session) RecordFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed++
}

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		ID:        s.id,
		StartedAt: s.started,
		Saved:     len(s.frames),
		Failed:    s.failed,
		Bytes:     s.bytes,
	}
}

// Frames returns the frames saved so far, oldest first.
func (s *Session) Frames() []SavedFrame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]SavedFrame(nil), s.frames...)
}
