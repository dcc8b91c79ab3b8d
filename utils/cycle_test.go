package utils

import "testing"

func TestObserveFreshStates(t *testing.T) {
	d := NewCycleDetector()

	for _, h := range []string{"a", "b", "c", "d", "e", "f"} {
		if d.Observe(h) {
			t.Fatalf("fresh state %q flagged as stagnant", h)
		}
	}
}

func TestObserveStaticState(t *testing.T) {
	d := NewCycleDetector()

	if d.Observe("same") {
		t.Fatal("first observation cannot be stagnant")
	}
	if !d.Observe("same") {
		t.Fatal("repeated state should be flagged as stagnant")
	}
}

func TestObservePeriodTwoCycle(t *testing.T) {
	d := NewCycleDetector()

	d.Observe("a")
	d.Observe("b")
	if !d.Observe("a") {
		t.Fatal("period-2 oscillation should be flagged as stagnant")
	}
}

func TestResetClearsWindow(t *testing.T) {
	d := NewCycleDetector()

	d.Observe("a")
	d.Reset()
	if d.Observe("a") {
		t.Fatal("states observed before Reset should be forgotten")
	}
}
