package ebiten

import (
	"math"
	"time"

	"farmstead/pkg/engine/tween"
)

// cursorAlpha returns the opacity of the tile cursor at time now.
// A sine wave moves it between cursorMinAlpha and cursorMaxAlpha.
func cursorAlpha(now time.Time) float64 {
	phase := float64(now.UnixMilli()%int64(cursorPulsePeriod)) / cursorPulsePeriod
	pulse := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0 // 0.0 to 1.0
	return tween.Lerp(cursorMinAlpha, cursorMaxAlpha, pulse)
}
