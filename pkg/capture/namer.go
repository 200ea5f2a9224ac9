package capture

import (
	"fmt"
	"path/filepath"
	"time"
)

// stampLayout is the second-resolution timestamp embedded in filenames.
const stampLayout = "20060102_150405"

// Namer produces collision-free paths for saved frames within a run.
//
// Names follow frame_<YYYYMMDD>_<HHMMSS>_<n>.jpg where n counts captures
// within the same wall-clock second, starting at 0. The counter resets
// whenever the second-resolution stamp changes, so suffixes stay short
// while every name handed out in a run stays unique. Collisions across
// runs at the same wall-clock second are accepted residual risk.
type Namer struct {
	dir   string
	now   func() time.Time
	stamp string
	count int
}

// NewNamer creates a Namer writing into dir using the real clock.
func NewNamer(dir string) *Namer {
	return NewNamerWithClock(dir, time.Now)
}

// NewNamerWithClock creates a Namer with an injected clock, so the
// per-second counter can be tested without waiting on wall time.
func NewNamerWithClock(dir string, now func() time.Time) *Namer {
	return &Namer{dir: dir, now: now}
}

// Next returns a fresh path for a frame captured at the current
// wall-clock second.
func (n *Namer) Next() string {
	stamp := n.now().Format(stampLayout)
	if stamp != n.stamp {
		n.stamp = stamp
		n.count = 0
	}
	name := fmt.Sprintf("frame_%s_%d.jpg", stamp, n.count)
	n.count++
	return filepath.Join(n.dir, name)
}
