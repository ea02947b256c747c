// Package display delivers prediction strings to output sinks. A sink
// accepts exactly one display-ready string per result; there is no
// structured data and no history.
package display

import "fmt"

// Sink renders the latest prediction string.
type Sink interface {
	Show(text string)
}

// Console prints predictions to stdout.
type Console struct{}

// Show writes the prediction line.
func (Console) Show(text string) {
	fmt.Printf("👁️  %s\n", text)
}

// Func adapts a function to the Sink interface.
type Func func(text string)

// Show calls the wrapped function.
func (f Func) Show(text string) {
	f(text)
}

// Fanout forwards every prediction to all given sinks in order.
func Fanout(sinks ...Sink) Sink {
	return Func(func(text string) {
		for _, s := range sinks {
			s.Show(text)
		}
	})
}
