package gameplay

import (
	"strings"

	"farmstead/pkg/engine/world"
	"farmstead/pkg/game/farm"
	"farmstead/pkg/game/i18n"
	"farmstead/pkg/game/renderer"
	"farmstead/pkg/game/state"
)

// MoveFarmer asks the farmer to step one tile. Blocked moves (edge of the
// farm, move already in flight) still turn the farmer to face dir.
func MoveFarmer(g *state.Game, dir world.Direction) bool {
	return g.Farmer.Move(dir)
}

// PerformAction applies a farming action to the tile under the farmer.
// Successful actions flag the tile for redraw; a harvest goes to the inventory.
func PerformAction(g *state.Game, action farm.Action) bool {
	pos := g.FarmerPosition()
	before, ok := g.Grid.Tile(pos)
	if !ok {
		return false
	}

	harvested, ok := g.Grid.Apply(pos, action, g.SelectedCrop, g.Now())
	if !ok {
		logMessage(g, i18n.Get("ACTION_FAILED",
			i18n.Get("VERB_"+strings.ToUpper(string(action))),
			renderer.StateName(before.State)))
		return false
	}

	g.MarkDirty(pos)
	switch action {
	case farm.Hoe:
		logMessage(g, i18n.Get("ACTION_HOE", pos.String()))
	case farm.Plant:
		logMessage(g, i18n.Get("ACTION_PLANT", renderer.CropName(g.SelectedCrop), pos.String()))
	case farm.Water:
		logMessage(g, i18n.Get("ACTION_WATER", renderer.CropName(before.Crop)))
	case farm.Harvest:
		g.AddHarvest(harvested)
		logMessage(g, i18n.Get("ACTION_HARVEST", renderer.CropName(harvested)))
	}
	return true
}
