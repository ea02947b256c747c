// Package capture provides camera frame acquisition for the analysis
// pipeline. Sources hand out frames that the consumer must Release on every
// path, so the capture layer can account for buffers still in flight.
package capture

import (
	"context"
	"errors"
	"image"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Error kinds returned by sources. Setup failures are reported explicitly to
// the caller instead of being swallowed inside the package.
var (
	// ErrDeviceUnavailable means the camera device could not be opened.
	ErrDeviceUnavailable = errors.New("capture: camera device unavailable")
	// ErrReadFailed means a frame could not be read from the device.
	ErrReadFailed = errors.New("capture: frame read failed")
	// ErrSourceClosed means the source has stopped producing frames.
	ErrSourceClosed = errors.New("capture: source closed")
)

// Frame is a single captured RGB raster plus its monotonically increasing
// sequence number. Frames are ephemeral: the consumer must call Release
// exactly once, immediately after the frame has been classified or dropped.
type Frame struct {
	ID        uuid.UUID
	Seq       uint64
	Img       image.Image
	Timestamp time.Time

	released  atomic.Bool
	onRelease func()
}

// NewFrame wraps an image produced by a source. onRelease runs once when the
// consumer releases the frame; it may be nil.
func NewFrame(seq uint64, img image.Image, onRelease func()) *Frame {
	return &Frame{
		ID:        uuid.New(),
		Seq:       seq,
		Img:       img,
		Timestamp: time.Now(),
		onRelease: onRelease,
	}
}

// Release returns the frame to its source. Only the first call has effect,
// so deferred releases on error paths are safe.
func (f *Frame) Release() {
	if f.released.CompareAndSwap(false, true) {
		if f.onRelease != nil {
			f.onRelease()
		}
	}
}

// Released reports whether the frame has been released.
func (f *Frame) Released() bool {
	return f.released.Load()
}

// Source produces frames with monotonically increasing sequence numbers.
// Each delivered frame remains valid until the consumer releases it.
type Source interface {
	// Read blocks until the next frame is available or ctx is done.
	Read(ctx context.Context) (*Frame, error)

	// Close releases the underlying device.
	Close() error
}
