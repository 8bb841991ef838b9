// Package tween interpolates a 2D point over time. A tween is advanced by the
// per-frame driver and fires its completion callback exactly once.
package tween

import (
	"math"
	"time"

	"github.com/zyedidia/generic"
)

// Ease maps linear progress in [0,1] to eased progress
type Ease func(t float64) float64

// Linear is the identity easing
func Linear(t float64) float64 {
	return t
}

// Power2Out decelerates towards the end (cubic out)
func Power2Out(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return generic.Clamp(v, lo, hi)
}

// Lerp interpolates between start and end, clamping t to [0,1]
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*Clamp(t, 0, 1)
}

// Tween moves a point from one placement to another
type Tween struct {
	fromX, fromY float64
	toX, toY     float64

	duration time.Duration
	elapsed  time.Duration
	ease     Ease

	onComplete func()
	done       bool
}

// New creates a tween. A nil ease defaults to Linear. onComplete may be nil.
func New(fromX, fromY, toX, toY float64, duration time.Duration, ease Ease, onComplete func()) *Tween {
	if ease == nil {
		ease = Linear
	}
	if duration < 0 {
		duration = 0
	}
	return &Tween{
		fromX:      fromX,
		fromY:      fromY,
		toX:        toX,
		toY:        toY,
		duration:   duration,
		ease:       ease,
		onComplete: onComplete,
	}
}

// Advance moves the tween forward by dt and reports whether it has finished.
// The completion callback runs on the call that finishes the tween.
func (tw *Tween) Advance(dt time.Duration) bool {
	if tw.done {
		return true
	}
	if dt > 0 {
		tw.elapsed += dt
	}
	if tw.elapsed < tw.duration {
		return false
	}

	tw.elapsed = tw.duration
	tw.done = true
	if tw.onComplete != nil {
		tw.onComplete()
	}
	return true
}

// Progress returns linear progress in [0,1]
func (tw *Tween) Progress() float64 {
	if tw.duration == 0 {
		if tw.done {
			return 1
		}
		return 0
	}
	return Clamp(float64(tw.elapsed)/float64(tw.duration), 0, 1)
}

// Position returns the current eased placement
func (tw *Tween) Position() (x, y float64) {
	p := tw.ease(tw.Progress())
	return tw.fromX + (tw.toX-tw.fromX)*p, tw.fromY + (tw.toY-tw.fromY)*p
}

// Done reports whether the tween has completed
func (tw *Tween) Done() bool {
	return tw.done
}
