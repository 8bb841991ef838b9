// Package gameplay provides core game logic: dispatching player intents to
// the farmer and the farm grid, and advancing the session each tick.
package gameplay

import (
	"log"

	engineinput "farmstead/pkg/engine/input"
	"farmstead/pkg/game/devtools"
	"farmstead/pkg/game/farm"
	"farmstead/pkg/game/i18n"
	"farmstead/pkg/game/save"
	"farmstead/pkg/game/state"
)

// DumpDir is where the map dump is written ("" is the working directory)
var DumpDir = ""

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if dir, ok := engineinput.MoveDirection(intent.Action); ok {
		MoveFarmer(g, dir)
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionHoe:
		PerformAction(g, farm.Hoe)

	case engineinput.ActionPlant:
		PerformAction(g, farm.Plant)

	case engineinput.ActionWater:
		PerformAction(g, farm.Water)

	case engineinput.ActionHarvest:
		PerformAction(g, farm.Harvest)

	case engineinput.ActionSave:
		SaveGame(g)

	case engineinput.ActionDumpMap:
		path, err := devtools.DumpFarmToFile(g, DumpDir)
		if err != nil {
			logMessage(g, i18n.Get("MAP_DUMP_FAILED", err))
		} else {
			logMessage(g, i18n.Get("MAP_DUMPED", path))
		}

	case engineinput.ActionQuit:
		g.Quit = true
		logMessage(g, i18n.Get("GOODBYE"))
	}
}

// SaveGame writes the session to the current save slot
func SaveGame(g *state.Game) {
	if err := save.Current.Save(g); err != nil {
		log.Printf("[Gameplay] save failed: %v", err)
		logMessage(g, i18n.Get("SAVE_FAILED", err))
		return
	}
	logMessage(g, i18n.Get("GAME_SAVED"))
}

// LoadGame replaces the session with the current save slot
func LoadGame(g *state.Game) error {
	if err := save.Current.Load(g); err != nil {
		return err
	}
	logMessage(g, i18n.Get("GAME_LOADED"))
	return nil
}

func logMessage(g *state.Game, msg string) {
	g.AddMessage(msg)
}
