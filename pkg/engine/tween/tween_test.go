package tween

import (
	"testing"
	"time"
)

func TestClamp(t *testing.T) {
	tests := []struct{ v, lo, hi, want float64 }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct{ start, end, t, want float64 }{
		{0, 10, 0.5, 5},
		{0, 10, -1, 0},
		{0, 10, 2, 10},
		{10, 20, 0.25, 12.5},
	}
	for _, tt := range tests {
		if got := Lerp(tt.start, tt.end, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.start, tt.end, tt.t, got, tt.want)
		}
	}
}

func TestTween_CompletesOnceAtDuration(t *testing.T) {
	calls := 0
	tw := New(0, 0, 32, 64, 200*time.Millisecond, Power2Out, func() { calls++ })

	if tw.Advance(100 * time.Millisecond) {
		t.Fatal("Advance(100ms) = true, want false (half way)")
	}
	x, y := tw.Position()
	if x <= 16 || x >= 32 || y <= 32 || y >= 64 {
		t.Errorf("eased half-way Position() = (%v, %v), want past midpoint and short of target", x, y)
	}
	if calls != 0 {
		t.Errorf("onComplete called %d times before completion", calls)
	}

	if !tw.Advance(100 * time.Millisecond) {
		t.Fatal("Advance to 200ms = false, want true")
	}
	tw.Advance(time.Second)
	if calls != 1 {
		t.Errorf("onComplete called %d times, want 1", calls)
	}
	if x, y := tw.Position(); x != 32 || y != 64 {
		t.Errorf("final Position() = (%v, %v), want (32, 64)", x, y)
	}
}

func TestTween_ZeroDuration(t *testing.T) {
	done := false
	tw := New(1, 1, 2, 2, 0, nil, func() { done = true })
	if tw.Done() {
		t.Fatal("Done() before Advance = true, want false")
	}
	if !tw.Advance(0) || !done {
		t.Error("Advance(0) on zero-duration tween did not complete")
	}
}
