package capture

import (
	"errors"
	"sync"
	"time"
)

// ErrDeviceGone is returned by a MockSource once its frame budget is
// exhausted.
var ErrDeviceGone = errors.New("mock source: device unavailable")

// MockFrame is an inert frame for tests. It records how many times it
// was closed.
type MockFrame struct {
	Closed int
}

// Close implements Frame.
func (f *MockFrame) Close() error {
	f.Closed++
	return nil
}

// MockSource produces synthetic frames for tests. It fails with
// ErrDeviceGone after Frames pulls; a negative Frames means unlimited.
type MockSource struct {
	Frames     int
	CloseCount int

	mu       sync.Mutex
	produced []*MockFrame
}

// NewMockSource creates a source that produces n frames before failing.
func NewMockSource(n int) *MockSource {
	return &MockSource{Frames: n}
}

// NextFrame implements Source.
func (s *MockSource) NextFrame() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Frames >= 0 && len(s.produced) >= s.Frames {
		return nil, ErrDeviceGone
	}
	f := &MockFrame{}
	s.produced = append(s.produced, f)
	return f, nil
}

// Close implements Source.
func (s *MockSource) Close() error {
	s.CloseCount++
	return nil
}

// Produced returns every frame handed out so far.
func (s *MockSource) Produced() []*MockFrame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*MockFrame(nil), s.produced...)
}

// MockDisplay replays a scripted key sequence, one key per poll. Once
// the script is exhausted it reports KeyQuit so tests always terminate.
type MockDisplay struct {
	Keys       []Key
	Shown      int
	CloseCount int
	next       int
}

// Show implements Display.
func (d *MockDisplay) Show(Frame) {
	d.Shown++
}

// WaitKey implements Display.
func (d *MockDisplay) WaitKey(_ time.Duration) Key {
	if d.next < len(d.Keys) {
		k := d.Keys[d.next]
		d.next++
		return k
	}
	return KeyQuit
}

// Close implements Display.
func (d *MockDisplay) Close() error {
	d.CloseCount++
	return nil
}

// MockStore records save paths and can be scripted to fail.
type MockStore struct {
	Paths []string

	// FailNext makes the next n saves fail.
	FailNext int
}

// Save implements Store.
func (s *MockStore) Save(_ Frame, path string) error {
	if s.FailNext > 0 {
		s.FailNext--
		return errors.New("mock store: write failed")
	}
	s.Paths = append(s.Paths, path)
	return nil
}
