package camera

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-framegrab/pkg/capture"
)

// Frame wraps a gocv.Mat pulled from the device. It satisfies
// capture.Frame; Close releases the Mat's native buffer.
type Frame struct {
	mat gocv.Mat
}

// Mat exposes the underlying matrix for rendering and encoding.
func (f *Frame) Mat() *gocv.Mat {
	return &f.mat
}

// Close implements capture.Frame.
func (f *Frame) Close() error {
	return f.mat.Close()
}

// Source reads frames from a local camera device via gocv. It is not
// safe for concurrent use; the capture loop is its only caller.
type Source struct {
	cfg Config
	cap *gocv.VideoCapture
}

// Open opens the configured device and applies the resolution settings.
// A device that cannot be opened is a setup error, not a transient one;
// callers should treat it as fatal.
func Open(cfg Config) (*Source, error) {
	cam, err := gocv.OpenVideoCapture(cfg.Device)
	if err != nil {
		return nil, fmt.Errorf("open camera device %d: %w", cfg.Device, err)
	}

	cam.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	cam.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	if cfg.Framerate > 0 {
		cam.Set(gocv.VideoCaptureFPS, float64(cfg.Framerate))
	}

	return &Source{cfg: cfg, cap: cam}, nil
}

// NextFrame implements capture.Source. An empty or failed read means the
// device disconnected mid-run.
func (s *Source) NextFrame() (capture.Frame, error) {
	mat := gocv.NewMat()
	if ok := s.cap.Read(&mat); !ok {
		mat.Close()
		return nil, fmt.Errorf("camera device %d: read failed", s.cfg.Device)
	}
	if mat.Empty() {
		mat.Close()
		return nil, fmt.Errorf("camera device %d: empty frame", s.cfg.Device)
	}
	return &Frame{mat: mat}, nil
}

// Close implements capture.Source.
func (s *Source) Close() error {
	return s.cap.Close()
}

// Config returns the configuration the source was opened with.
func (s *Source) Config() Config {
	return s.cfg
}
