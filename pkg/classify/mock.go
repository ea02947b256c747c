package classify

// MockEngine is an in-memory Engine for tests and model-free demos.
// It returns a fixed score vector from every Invoke call.
type MockEngine struct {
	Scores []byte // Returned per-label scores
	Err    error  // If set, Invoke fails with this error

	InvokeCount int    // Number of Invoke calls
	LastInput   []byte // Input from the most recent call
	Closed      bool
}

// Invoke records the input and returns a copy of the configured scores.
func (m *MockEngine) Invoke(input []byte) ([]byte, error) {
	m.InvokeCount++
	m.LastInput = input
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]byte, len(m.Scores))
	copy(out, m.Scores)
	return out, nil
}

// OutputLen returns the configured score vector length.
func (m *MockEngine) OutputLen() int {
	return len(m.Scores)
}

// Close marks the engine closed.
func (m *MockEngine) Close() error {
	m.Closed = true
	return nil
}
