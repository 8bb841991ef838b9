package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "farmstead/pkg/engine/input"
	"farmstead/pkg/game/gameplay"
)

type keyCode struct {
	key  ebiten.Key
	code string
}

// keyCodes maps Ebiten keys to raw input codes. Every letter and digit is
// listed so rebound keys reach the bindings.
var keyCodes = buildKeyCodes()

func buildKeyCodes() []keyCode {
	codes := []keyCode{
		{ebiten.KeyArrowUp, "arrow_up"},
		{ebiten.KeyArrowDown, "arrow_down"},
		{ebiten.KeyArrowLeft, "arrow_left"},
		{ebiten.KeyArrowRight, "arrow_right"},
		{ebiten.KeySpace, "space"},
		{ebiten.KeyEnter, "enter"},
		{ebiten.KeyF5, "f5"},
		{ebiten.KeyF9, "f9"},
		{ebiten.KeyEscape, "escape"},
	}
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		codes = append(codes, keyCode{k, string(rune('a' + int(k-ebiten.KeyA)))})
	}
	for k := ebiten.KeyDigit0; k <= ebiten.KeyDigit9; k++ {
		codes = append(codes, keyCode{k, string(rune('0' + int(k-ebiten.KeyDigit0)))})
	}
	return codes
}

// gamepadCodes maps standard gamepad buttons to raw input codes
var gamepadCodes = []struct {
	button ebiten.StandardGamepadButton
	code   string
}{
	{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up"},
	{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down"},
	{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left"},
	{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right"},
	{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
	{ebiten.StandardGamepadButtonRightRight, "gamepad_b"},
	{ebiten.StandardGamepadButtonRightLeft, "gamepad_x"},
	{ebiten.StandardGamepadButtonRightTop, "gamepad_y"},
	{ebiten.StandardGamepadButtonCenterRight, "gamepad_start"},
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("[Ebiten] window opened (%dx%d)", w, h)
	}

	g := e.game
	if g == nil {
		return nil
	}

	// Check for gamepad input first, then fall back to keyboard (raw layer)
	if intent := e.checkGamepadInput(); intent.Action != engineinput.ActionNone {
		gameplay.ProcessIntent(g, intent)
	} else if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		gameplay.ProcessIntent(g, intent)
	}

	gameplay.Tick(g, time.Second/time.Duration(ebiten.TPS()))

	if g.Quit {
		return ebiten.Termination
	}
	return nil
}

// checkInput returns the intent of the first bound key pressed this frame
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, k := range keyCodes {
		if !inpututil.IsKeyJustPressed(k.key) {
			continue
		}
		if intent := engineinput.IntentFor(engineinput.DeviceKeyboard, k.code); intent.Action != engineinput.ActionNone {
			return intent
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkGamepadInput returns the intent of the first button pressed this
// frame on any connected standard-layout gamepad
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				return engineinput.IntentFor(engineinput.DeviceGamepad, b.code)
			}
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}
