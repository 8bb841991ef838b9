package gameplay

import (
	"time"

	"farmstead/pkg/game/i18n"
	"farmstead/pkg/game/state"
)

// Tick advances the session by dt: the game clock, crop growth, then the
// farmer's move transition. Tiles that ripened are flagged for redraw.
func Tick(g *state.Game, dt time.Duration) {
	g.Clock.Advance(dt)

	ripe := g.Grid.UpdateTiles(g.Now())
	for _, p := range ripe {
		g.MarkDirty(p)
	}
	if len(ripe) > 0 {
		logMessage(g, i18n.Get("CROP_READY", len(ripe)))
	}

	g.Farmer.Update(dt)
}
