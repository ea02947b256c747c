package capture

import (
	"context"
	"fmt"
	"sync/atomic"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-lens/internal/log"
)

// WebcamConfig holds webcam source configuration.
type WebcamConfig struct {
	Device int // V4L2 device index
	Width  int // Requested frame width, 0 for device default
	Height int // Requested frame height, 0 for device default
}

// DefaultWebcamConfig returns the default capture configuration.
func DefaultWebcamConfig() WebcamConfig {
	return WebcamConfig{
		Device: 0,
		Width:  640,
		Height: 480,
	}
}

// Webcam reads frames from a local camera through OpenCV. It is intended for
// a single reader goroutine; the capture Mat is reused between reads and the
// decoded image is copied out per frame.
type Webcam struct {
	cap         *gocv.VideoCapture
	mat         gocv.Mat
	seq         uint64
	outstanding atomic.Int64
}

// OpenWebcam opens the camera device. The returned error wraps
// ErrDeviceUnavailable when the device cannot be opened, so callers can
// react to the specific failure kind.
func OpenWebcam(cfg WebcamConfig) (*Webcam, error) {
	vc, err := gocv.OpenVideoCapture(cfg.Device)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", ErrDeviceUnavailable, cfg.Device, err)
	}
	if cfg.Width > 0 {
		vc.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	}
	if cfg.Height > 0 {
		vc.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	}

	log.Info("camera opened", "device", cfg.Device, "width", cfg.Width, "height", cfg.Height)

	return &Webcam{
		cap: vc,
		mat: gocv.NewMat(),
	}, nil
}

// Read captures the next frame. The returned frame must be released by the
// consumer; until then it counts as outstanding.
func (w *Webcam) Read(ctx context.Context) (*Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if ok := w.cap.Read(&w.mat); !ok || w.mat.Empty() {
		return nil, ErrReadFailed
	}

	img, err := w.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	seq := w.seq
	w.seq++
	w.outstanding.Add(1)
	return NewFrame(seq, img, func() {
		w.outstanding.Add(-1)
	}), nil
}

// Outstanding returns the number of delivered frames not yet released.
func (w *Webcam) Outstanding() int64 {
	return w.outstanding.Load()
}

// Close releases the camera device.
func (w *Webcam) Close() error {
	w.mat.Close()
	return w.cap.Close()
}
