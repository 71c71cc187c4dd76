package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(4)
	fs.now = func() time.Time { return clock }

	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("interval=%v, want 250ms", fs.Interval())
	}
	if !fs.ShouldStep() {
		t.Fatal("first call must step")
	}
	clock = clock.Add(100 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before the interval elapsed")
	}
	clock = clock.Add(150 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step once the interval elapsed")
	}
}

func TestFixedStepDefaults(t *testing.T) {
	for _, fps := range []float64{0, -3} {
		if got := NewFixedStep(fps).Interval(); got != 100*time.Millisecond {
			t.Fatalf("fps=%v interval=%v, want 100ms", fps, got)
		}
	}
	fs := NewFixedStep(10)
	fs.SetFPS(7.5)
	if got, want := fs.Interval(), 133333333*time.Nanosecond; got != want {
		t.Fatalf("interval=%v, want %v", got, want)
	}
}
