package classify

import (
	"errors"
	"fmt"

	"github.com/mattn/go-tflite"
)

// Model input geometry. The bundled model is a quantized MobileNet with a
// fixed [1,224,224,3] uint8 RGB input and a [1,L] uint8 output.
const (
	InputWidth    = 224
	InputHeight   = 224
	InputChannels = 3
)

// InputSize is the flattened input tensor length in bytes.
const InputSize = InputWidth * InputHeight * InputChannels

// Engine abstracts the inference runtime behind the classifier.
type Engine interface {
	// Invoke runs one inference on a row-major RGB byte tensor of
	// InputSize bytes and returns the raw per-label scores.
	Invoke(input []byte) ([]byte, error)

	// OutputLen returns the number of labels the model scores.
	OutputLen() int

	// Close releases runtime resources.
	Close() error
}

// TFLiteEngine runs a quantized TensorFlow Lite model. It is not
// goroutine-safe; the analysis worker serializes all Invoke calls.
type TFLiteEngine struct {
	model       *tflite.Model
	options     *tflite.InterpreterOptions
	interpreter *tflite.Interpreter
	outputLen   int
}

// NewTFLiteEngine memory-maps the model file and prepares an interpreter.
// The input tensor must be [1,224,224,3] uint8 and the output [1,L] uint8;
// anything else is a load failure.
func NewTFLiteEngine(cfg Config) (*TFLiteEngine, error) {
	model := tflite.NewModelFromFile(cfg.ModelPath)
	if model == nil {
		return nil, fmt.Errorf("cannot load model from %s", cfg.ModelPath)
	}

	options := tflite.NewInterpreterOptions()
	if cfg.NumThreads > 0 {
		options.SetNumThread(cfg.NumThreads)
	}

	interpreter := tflite.NewInterpreter(model, options)
	if interpreter == nil {
		options.Delete()
		model.Delete()
		return nil, errors.New("cannot create interpreter")
	}

	e := &TFLiteEngine{model: model, options: options, interpreter: interpreter}

	if status := interpreter.AllocateTensors(); status != tflite.OK {
		e.Close()
		return nil, errors.New("tensor allocation failed")
	}

	input := interpreter.GetInputTensor(0)
	if input.Type() != tflite.UInt8 {
		e.Close()
		return nil, fmt.Errorf("model input type is %v, want uint8", input.Type())
	}
	if input.NumDims() != 4 ||
		input.Dim(0) != 1 ||
		input.Dim(1) != InputHeight ||
		input.Dim(2) != InputWidth ||
		input.Dim(3) != InputChannels {
		e.Close()
		return nil, fmt.Errorf("unexpected model input shape, want [1 %d %d %d]",
			InputHeight, InputWidth, InputChannels)
	}

	output := interpreter.GetOutputTensor(0)
	if output.Type() != tflite.UInt8 {
		e.Close()
		return nil, fmt.Errorf("model output type is %v, want uint8", output.Type())
	}
	e.outputLen = output.Dim(output.NumDims() - 1)
	if e.outputLen <= 0 {
		e.Close()
		return nil, errors.New("model output width is zero")
	}

	return e, nil
}

// Invoke copies the input tensor into the interpreter, runs the model, and
// returns a copy of the output scores.
func (e *TFLiteEngine) Invoke(input []byte) ([]byte, error) {
	in := e.interpreter.GetInputTensor(0).UInt8s()
	if len(input) != len(in) {
		return nil, fmt.Errorf("input tensor is %d bytes, want %d", len(input), len(in))
	}
	copy(in, input)

	if status := e.interpreter.Invoke(); status != tflite.OK {
		return nil, errors.New("inference failed")
	}

	out := e.interpreter.GetOutputTensor(0).UInt8s()
	scores := make([]byte, len(out))
	copy(scores, out)
	return scores, nil
}

// OutputLen returns the model's output width.
func (e *TFLiteEngine) OutputLen() int {
	return e.outputLen
}

// Close releases the interpreter, options, and model.
func (e *TFLiteEngine) Close() error {
	if e.interpreter != nil {
		e.interpreter.Delete()
		e.interpreter = nil
	}
	if e.options != nil {
		e.options.Delete()
		e.options = nil
	}
	if e.model != nil {
		e.model.Delete()
		e.model = nil
	}
	return nil
}
