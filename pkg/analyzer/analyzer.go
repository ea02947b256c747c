// Package analyzer runs the single-worker frame analysis loop.
//
// Frames arrive from the capture layer at camera rate and are downsampled by
// the sampler; between the producer and the worker sits a keep-only-latest
// mailbox, so at most one frame is in flight and a newer frame preempts any
// unconsumed one. Classify calls are strictly sequential within the worker,
// so the classifier needs no locking.
package analyzer

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/teslashibe/go-lens/internal/log"
	"github.com/teslashibe/go-lens/pkg/capture"
	"github.com/teslashibe/go-lens/pkg/classify"
	"github.com/teslashibe/go-lens/pkg/sampler"
)

// Prediction is one classification result, consumed by display sinks.
type Prediction struct {
	Text string    `json:"text"` // Display-ready result string
	Seq  uint64    `json:"seq"`  // Sequence number of the classified frame
	At   time.Time `json:"at"`   // When classification finished
}

// Classifier is the single operation the analyzer needs from the model
// layer. Satisfied by *classify.Classifier.
type Classifier interface {
	Classify(img image.Image) string
}

// predictionBuffer is the capacity of the outbound prediction channel.
const predictionBuffer = 8

// Analyzer owns the analysis worker and the mailbox feeding it.
type Analyzer struct {
	classifier Classifier
	sampler    *sampler.Sampler
	gate       gate
	metrics    metrics

	mu      sync.Mutex
	cond    *sync.Cond
	pending *capture.Frame

	predictions chan Prediction
}

// New creates an analyzer. The gate starts unauthorized; call Authorize
// once camera access has been granted, then Run.
func New(c Classifier, s *sampler.Sampler) *Analyzer {
	a := &Analyzer{
		classifier:  c,
		sampler:     s,
		predictions: make(chan Prediction, predictionBuffer),
	}
	a.cond = sync.NewCond(&a.mu)
	return a
}

// Authorize records the external authorization event (camera permission
// granted). Idempotent.
func (a *Analyzer) Authorize() {
	a.gate.authorize()
}

// GateState returns the current gate state.
func (a *Analyzer) GateState() GateState {
	return a.gate.current()
}

// Predictions returns the one-directional channel of results. Consumers
// read from it and never mutate analyzer state.
func (a *Analyzer) Predictions() <-chan Prediction {
	return a.predictions
}

// Metrics returns a snapshot of the pipeline counters.
func (a *Analyzer) Metrics() Metrics {
	return a.metrics.snapshot()
}

// Submit offers a captured frame to the pipeline. Never blocks: unsampled
// frames are released immediately, and a sampled frame replaces (and
// releases) any frame still waiting in the mailbox.
func (a *Analyzer) Submit(f *capture.Frame) {
	a.metrics.received.Add(1)

	if !a.sampler.ShouldSample(f.Seq) {
		a.metrics.dropped.Add(1)
		f.Release()
		return
	}
	a.metrics.sampled.Add(1)

	a.mu.Lock()
	if a.pending != nil {
		a.metrics.preempted.Add(1)
		a.pending.Release()
	}
	a.pending = f
	a.cond.Signal()
	a.mu.Unlock()
}

// Run executes the analysis loop until ctx is done. It fails with
// ErrNotAuthorized unless Authorize was called first. Classification is
// strictly sequential: no two inferences overlap.
func (a *Analyzer) Run(ctx context.Context) error {
	if err := a.gate.start(); err != nil {
		return err
	}
	defer a.gate.stop()

	log.Info("analysis worker started", "interval", a.sampler.Interval())

	// Wake the wait loop when the context ends.
	stop := context.AfterFunc(ctx, func() {
		a.mu.Lock()
		a.cond.Broadcast()
		a.mu.Unlock()
	})
	defer stop()

	for {
		a.mu.Lock()
		for a.pending == nil && ctx.Err() == nil {
			a.cond.Wait()
		}
		f := a.pending
		a.pending = nil
		a.mu.Unlock()

		if ctx.Err() != nil {
			if f != nil {
				f.Release()
			}
			log.Info("analysis worker stopped")
			return nil
		}

		a.analyze(f)
	}
}

// analyze classifies one frame and emits the result. The frame is released
// on every exit path.
func (a *Analyzer) analyze(f *capture.Frame) {
	defer f.Release()

	text := a.classifier.Classify(f.Img)
	a.metrics.classified.Add(1)
	if classify.IsError(text) {
		a.metrics.errored.Add(1)
	}

	p := Prediction{Text: text, Seq: f.Seq, At: time.Now()}
	a.emit(p)

	log.Debug("frame classified", "seq", f.Seq, "result", text)
}

// emit delivers a prediction without blocking the worker. If the channel is
// full the oldest pending value is dropped so the latest result wins.
func (a *Analyzer) emit(p Prediction) {
	for {
		select {
		case a.predictions <- p:
			return
		default:
		}
		select {
		case <-a.predictions:
		default:
		}
	}
}
