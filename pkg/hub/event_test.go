package hub

import (
	"errors"
	"testing"
)

func TestEventConstructors(t *testing.T) {
	saved := Saved("frame_20240601_100000_0.jpg")
	if saved.Type != EventSaved {
		t.Errorf("Type = %q, want %q", saved.Type, EventSaved)
	}
	if saved.Frame != "frame_20240601_100000_0.jpg" {
		t.Errorf("Frame = %q", saved.Frame)
	}
	if saved.At.IsZero() {
		t.Error("At is zero")
	}

	failed := SaveFailed("frame_20240601_100000_1.jpg", errors.New("disk full"))
	if failed.Type != EventSaveFailed {
		t.Errorf("Type = %q, want %q", failed.Type, EventSaveFailed)
	}
	if failed.Error != "disk full" {
		t.Errorf("Error = %q", failed.Error)
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	h := New(nil)
	// No Run() and no clients; publishing past the buffer must drop,
	// not block the caller.
	for i := 0; i < 1000; i++ {
		h.Publish(Saved("frame.jpg"))
	}
	if h.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d, want 0", h.ClientCount())
	}
}
