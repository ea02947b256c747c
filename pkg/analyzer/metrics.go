package analyzer

import "sync/atomic"

// Metrics is a snapshot of pipeline counters.
type Metrics struct {
	Received   uint64 `json:"received"`   // Frames submitted by the capture layer
	Sampled    uint64 `json:"sampled"`    // Frames selected for classification
	Dropped    uint64 `json:"dropped"`    // Frames discarded by the sampler
	Preempted  uint64 `json:"preempted"`  // Sampled frames replaced before analysis
	Classified uint64 `json:"classified"` // Frames that went through the model
	Errored    uint64 `json:"errored"`    // Classifications that produced an error result
}

// metrics holds the live counters. All fields are updated atomically so the
// snapshot never blocks the worker.
type metrics struct {
	received   atomic.Uint64
	sampled    atomic.Uint64
	dropped    atomic.Uint64
	preempted  atomic.Uint64
	classified atomic.Uint64
	errored    atomic.Uint64
}

// snapshot copies the counters into an exported view.
func (m *metrics) snapshot() Metrics {
	return Metrics{
		Received:   m.received.Load(),
		Sampled:    m.sampled.Load(),
		Dropped:    m.dropped.Load(),
		Preempted:  m.preempted.Load(),
		Classified: m.classified.Load(),
		Errored:    m.errored.Load(),
	}
}
