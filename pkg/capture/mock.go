package capture

import (
	"context"
	"image"
	"image/color"
	"sync/atomic"
)

// MockSource yields synthetic frames for tests and camera-free demos.
type MockSource struct {
	Img   image.Image // Frame content; a gray test card if nil
	Limit int         // Frames to produce before ErrSourceClosed; 0 = unlimited

	seq      uint64
	produced int
	released atomic.Int64
}

// NewMockSource creates a mock source producing the given image.
func NewMockSource(img image.Image) *MockSource {
	if img == nil {
		card := image.NewRGBA(image.Rect(0, 0, 64, 48))
		for y := 0; y < 48; y++ {
			for x := 0; x < 64; x++ {
				card.Set(x, y, color.Gray{Y: 128})
			}
		}
		img = card
	}
	return &MockSource{Img: img}
}

// Read returns the next synthetic frame with an increasing sequence number.
func (m *MockSource) Read(ctx context.Context) (*Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Limit > 0 && m.produced >= m.Limit {
		return nil, ErrSourceClosed
	}
	m.produced++
	seq := m.seq
	m.seq++
	return NewFrame(seq, m.Img, func() {
		m.released.Add(1)
	}), nil
}

// ReleasedCount returns how many delivered frames have been released.
func (m *MockSource) ReleasedCount() int64 {
	return m.released.Load()
}

// Close is a no-op for the mock source.
func (m *MockSource) Close() error {
	return nil
}
