// Package store persists captured frames as JPEG files and tracks
// per-run session statistics.
package store

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-framegrab/pkg/camera"
	"github.com/teslashibe/go-framegrab/pkg/capture"
)

// JPEGStore implements capture.Store. Files are written atomically so a
// failed save never leaves a partial file behind.
type JPEGStore struct {
	quality int
}

// NewJPEGStore creates a store encoding at the given JPEG quality (1-100).
func NewJPEGStore(quality int) *JPEGStore {
	if quality < 1 || quality > 100 {
		quality = camera.DefaultConfig().Quality
	}
	return &JPEGStore{quality: quality}
}

// Save implements capture.Store.
func (s *JPEGStore) Save(f capture.Frame, path string) error {
	cf, ok := f.(*camera.Frame)
	if !ok {
		return fmt.Errorf("store: unsupported frame type %T", f)
	}

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, *cf.Mat(),
		[]int{gocv.IMWriteJpegQuality, s.quality})
	if err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	defer buf.Close()

	if err := writeFileAtomic(path, buf.GetBytes()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
