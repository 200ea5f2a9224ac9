package capture

import (
	"path/filepath"
	"regexp"
	"testing"
	"time"
)

// fixedClock returns a clock stuck at t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNamerSameSecond(t *testing.T) {
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	n := NewNamerWithClock("frames", fixedClock(at))

	want := []string{
		filepath.Join("frames", "frame_20240601_100000_0.jpg"),
		filepath.Join("frames", "frame_20240601_100000_1.jpg"),
		filepath.Join("frames", "frame_20240601_100000_2.jpg"),
	}

	for i, w := range want {
		if got := n.Next(); got != w {
			t.Errorf("Next() call %d = %q, want %q", i, got, w)
		}
	}
}

func TestNamerCounterResetsAcrossSeconds(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	n := NewNamerWithClock("frames", func() time.Time { return now })

	first := n.Next()
	second := n.Next()

	// Advance past the second boundary; the counter must restart at 0.
	now = now.Add(time.Second)
	third := n.Next()

	if first != filepath.Join("frames", "frame_20240601_100000_0.jpg") {
		t.Errorf("first = %q", first)
	}
	if second != filepath.Join("frames", "frame_20240601_100000_1.jpg") {
		t.Errorf("second = %q", second)
	}
	if third != filepath.Join("frames", "frame_20240601_100001_0.jpg") {
		t.Errorf("third = %q, counter did not reset", third)
	}
}

func TestNamerUniqueness(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	n := NewNamerWithClock("frames", func() time.Time { return now })

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		path := n.Next()
		if seen[path] {
			t.Fatalf("duplicate path %q at capture %d", path, i)
		}
		seen[path] = true
		if i%7 == 0 {
			now = now.Add(time.Second)
		}
	}
}

func TestNamerFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^frame_\d{8}_\d{6}_\d+\.jpg$`)

	tests := []struct {
		name string
		at   time.Time
	}{
		{"midnight", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"end of year", time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)},
		{"single digit fields", time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNamerWithClock("out", fixedClock(tt.at))
			base := filepath.Base(n.Next())
			if !pattern.MatchString(base) {
				t.Errorf("Next() base = %q, does not match %v", base, pattern)
			}
		})
	}
}

func TestNamerEmptyDir(t *testing.T) {
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	n := NewNamerWithClock("", fixedClock(at))
	if got, want := n.Next(), "frame_20240601_100000_0.jpg"; got != want {
		t.Errorf("Next() = %q, want %q", got, want)
	}
}
