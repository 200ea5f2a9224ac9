// Package hub provides a thread-safe websocket broadcast hub for capture
// events, using the channel-based fan-out pattern.
package hub

import "time"

// EventType names a capture session event.
type EventType string

const (
	// EventSaved is published after a frame is written to disk.
	EventSaved EventType = "frame_saved"

	// EventSaveFailed is published after a save attempt errors.
	EventSaveFailed EventType = "save_failed"
)

// Event is one capture session notification broadcast to dashboard
// clients.
type Event struct {
	Type  EventType `json:"type"`
	Frame string    `json:"frame,omitempty"`
	Error string    `json:"error,omitempty"`
	At    time.Time `json:"at"`
}

// Saved builds a frame-saved event for the given file name.
func Saved(name string) Event {
	return Event{Type: EventSaved, Frame: name, At: time.Now()}
}

// SaveFailed builds a save-failure event.
func SaveFailed(name string, err error) Event {
	e := Event{Type: EventSaveFailed, Frame: name, At: time.Now()}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}
