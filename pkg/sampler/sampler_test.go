package sampler

import "testing"

func TestShouldSample_DefaultInterval(t *testing.T) {
	s, err := New(DefaultInterval)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Property: for any marker m, ShouldSample(m) == (m % 30 == 0).
	for m := uint64(0); m < 300; m++ {
		want := m%30 == 0
		if got := s.ShouldSample(m); got != want {
			t.Fatalf("ShouldSample(%d) = %v, want %v", m, got, want)
		}
	}
}

func TestShouldSample_Boundaries(t *testing.T) {
	s, _ := New(30)

	sampled := []uint64{0, 30, 60, 90}
	for _, m := range sampled {
		if !s.ShouldSample(m) {
			t.Errorf("ShouldSample(%d) = false, want true", m)
		}
	}
	for m := uint64(1); m < 30; m++ {
		if s.ShouldSample(m) {
			t.Errorf("ShouldSample(%d) = true, want false", m)
		}
	}
}

func TestShouldSample_EveryFrame(t *testing.T) {
	s, err := New(1)
	if err != nil {
		t.Fatalf("New(1) error = %v", err)
	}
	for m := uint64(0); m < 10; m++ {
		if !s.ShouldSample(m) {
			t.Errorf("ShouldSample(%d) = false, want true with interval 1", m)
		}
	}
}

func TestNew_InvalidInterval(t *testing.T) {
	for _, interval := range []int{0, -1, -30} {
		if _, err := New(interval); err == nil {
			t.Errorf("New(%d) error = nil, want error", interval)
		}
	}
}

func TestInterval(t *testing.T) {
	s, _ := New(15)
	if s.Interval() != 15 {
		t.Errorf("Interval() = %d, want 15", s.Interval())
	}
}
