// Package classify runs captured frames through a pre-trained quantized
// image-classification model and reports the highest-confidence label.
package classify

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/teslashibe/go-lens/internal/log"
)

// State is the classifier lifecycle state.
type State int

const (
	// StateUninitialized means construction has not completed.
	StateUninitialized State = iota
	// StateReady means the model and label table loaded successfully.
	StateReady
	// StateFailed means loading failed; the classifier stays unusable.
	StateFailed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

// Result strings returned by Classify for non-label outcomes.
const (
	ResultNotLoaded = "Model not loaded"
	ResultUncertain = "Uncertain"
)

// errorPrefix marks per-call failure results.
const errorPrefix = "Error: "

// IsError reports whether a Classify result is a per-call failure string
// rather than a label, ResultUncertain, or ResultNotLoaded.
func IsError(result string) bool {
	return strings.HasPrefix(result, errorPrefix)
}

// DefaultThreshold is the confidence percentage a prediction must exceed
// to be reported instead of ResultUncertain.
const DefaultThreshold = 20

// Config holds classifier configuration.
type Config struct {
	ModelPath  string // Path to the quantized .tflite model
	LabelsPath string // Path to the label file, one label per line
	NumThreads int    // Interpreter threads

	// Threshold is the confidence percent a result must exceed to be
	// reported. The zero value selects DefaultThreshold; a negative value
	// reports every result, including 0%.
	Threshold int
}

// DefaultConfig returns production defaults for a quantized MobileNet.
func DefaultConfig() Config {
	return Config{
		ModelPath:  "models/mobilenet_v1_1.0_224_quant.tflite",
		LabelsPath: "models/labels.txt",
		Threshold:  DefaultThreshold,
		NumThreads: 4,
	}
}

// Classifier owns the loaded model and label table. The model and labels are
// loaded exactly once at construction and are read-only afterwards; Classify
// itself is stateless between calls. Close is the only mutation after
// construction and is serialized against in-flight Classify calls.
type Classifier struct {
	mu        sync.RWMutex
	engine    Engine
	labels    []string
	threshold int
	state     State
	loadErr   error
}

// New loads the model and label table. A load failure does not return an
// error: the classifier enters the failed state, records the cause, and
// every subsequent Classify call reports ResultNotLoaded instead of
// retrying the load.
func New(cfg Config) *Classifier {
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}
	c := &Classifier{threshold: cfg.Threshold}

	engine, err := NewTFLiteEngine(cfg)
	if err != nil {
		c.fail(fmt.Errorf("load model: %w", err))
		return c
	}

	labels, err := LoadLabels(cfg.LabelsPath)
	if err != nil {
		engine.Close()
		c.fail(fmt.Errorf("load labels: %w", err))
		return c
	}

	return c.finish(engine, labels)
}

// NewWithEngine builds a classifier around a prebuilt engine and label
// table. Used by tests and model-free demos.
func NewWithEngine(engine Engine, labels []string, threshold int) *Classifier {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	c := &Classifier{threshold: threshold}
	if engine == nil {
		c.fail(fmt.Errorf("nil engine"))
		return c
	}
	if len(labels) == 0 {
		c.fail(fmt.Errorf("empty label table"))
		return c
	}
	return c.finish(engine, labels)
}

func (c *Classifier) finish(engine Engine, labels []string) *Classifier {
	if got, want := len(labels), engine.OutputLen(); got != want {
		engine.Close()
		c.fail(fmt.Errorf("label count %d does not match model output width %d", got, want))
		return c
	}
	c.engine = engine
	c.labels = labels
	c.state = StateReady
	log.Info("classifier ready", "labels", len(labels), "threshold", c.threshold)
	return c
}

func (c *Classifier) fail(err error) {
	c.state = StateFailed
	c.loadErr = err
	log.Error("classifier load failed", "err", err)
}

// State returns the lifecycle state.
func (c *Classifier) State() State {
	return c.state
}

// Err returns the load error when the classifier is in the failed state.
func (c *Classifier) Err() error {
	return c.loadErr
}

// Labels returns the label table. Callers must not modify it.
func (c *Classifier) Labels() []string {
	return c.labels
}

// Classify runs one frame through the model and returns a display-ready
// string: "<label> (<confidence>%)" above the threshold, ResultUncertain at
// or below it, ResultNotLoaded when the model or labels never loaded, and
// "Error: <message>" for any per-call failure. The contract is total:
// Classify always returns a string and never panics through to the caller.
func (c *Classifier) Classify(img image.Image) (result string) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.state != StateReady {
		return ResultNotLoaded
	}

	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("%s%v", errorPrefix, r)
		}
	}()

	input, err := Preprocess(img)
	if err != nil {
		return errorPrefix + err.Error()
	}

	scores, err := c.engine.Invoke(input)
	if err != nil {
		return errorPrefix + err.Error()
	}
	if len(scores) == 0 {
		return errorPrefix + "model produced no scores"
	}

	idx, score := argmax(scores)

	// Scores are unsigned quantized bytes; integer division floors the
	// percentage, matching the model's 0-255 score range.
	confidence := int(score) * 100 / 255
	if confidence <= c.threshold {
		return ResultUncertain
	}

	return fmt.Sprintf("%s (%d%%)", c.labels[idx], confidence)
}

// Close releases the underlying engine. It waits for in-flight Classify
// calls to finish; calls after Close report ResultNotLoaded.
func (c *Classifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.engine == nil {
		return nil
	}
	err := c.engine.Close()
	c.engine = nil
	c.state = StateFailed
	c.loadErr = fmt.Errorf("classifier closed")
	return err
}

// argmax returns the smallest index achieving the maximum score. Only a
// strictly greater score replaces the current maximum, so the first index
// wins ties.
func argmax(scores []byte) (int, byte) {
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return best, scores[best]
}
