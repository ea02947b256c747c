// Package sampler decides which captured frames are forwarded to the
// classifier. Inference is far slower than frame capture; without
// downsampling, analysis backs up behind the camera.
package sampler

import "fmt"

// DefaultInterval is the default sampling interval: one frame in thirty.
const DefaultInterval = 30

// Sampler selects one frame in every Interval by sequence number.
//
// The rule is `seq % Interval == 0`, which assumes evenly spaced sequence
// numbers. With an irregular marker sequence this is an approximation of
// "one in N", not an exact pacing guarantee.
type Sampler struct {
	interval uint64
}

// New creates a sampler with the given interval. The interval must be >= 1;
// an interval of 1 samples every frame.
func New(interval int) (*Sampler, error) {
	if interval < 1 {
		return nil, fmt.Errorf("sampler: interval must be >= 1, got %d", interval)
	}
	return &Sampler{interval: uint64(interval)}, nil
}

// Interval returns the configured sampling interval.
func (s *Sampler) Interval() int {
	return int(s.interval)
}

// ShouldSample reports whether the frame with the given sequence number
// should be classified. Frames that are not sampled are simply discarded;
// there is no error condition and no retry.
func (s *Sampler) ShouldSample(seq uint64) bool {
	return seq%s.interval == 0
}
