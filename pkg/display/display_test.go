package display

import "testing"

func TestFanout(t *testing.T) {
	var a, b []string
	sink := Fanout(
		Func(func(text string) { a = append(a, text) }),
		Func(func(text string) { b = append(b, text) }),
	)

	sink.Show("dog (90%)")
	sink.Show("Uncertain")

	for name, got := range map[string][]string{"a": a, "b": b} {
		if len(got) != 2 || got[0] != "dog (90%)" || got[1] != "Uncertain" {
			t.Errorf("sink %s received %v", name, got)
		}
	}
}

func TestFanout_Empty(t *testing.T) {
	Fanout().Show("no sinks") // must not panic
}
