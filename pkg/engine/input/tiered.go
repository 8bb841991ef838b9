package input

import (
	"sort"
	"strings"
	"time"

	"farmstead/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp

	// Farming
	ActionHoe
	ActionPlant
	ActionWater
	ActionHarvest

	// Meta
	ActionSave
	ActionDumpMap
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "h", "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing.
// Both Ebiten (just-pressed edges) and terminal raw mode already deliver one
// event per key press, so this layer only drops the timestamp.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement
	"arrow_down":  ActionMoveDown,
	"down":        ActionMoveDown,
	"arrow_left":  ActionMoveLeft,
	"left":        ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"right":       ActionMoveRight,
	"arrow_up":    ActionMoveUp,
	"up":          ActionMoveUp,

	// Farming
	"h":       ActionHoe,
	"hoe":     ActionHoe,
	"p":       ActionPlant,
	"plant":   ActionPlant,
	"w":       ActionWater,
	"water":   ActionWater,
	"space":   ActionHarvest,
	"harvest": ActionHarvest,

	// Meta
	"f5":     ActionSave,
	"save":   ActionSave,
	"f9":     ActionDumpMap,
	"dump":   ActionDumpMap,
	"escape": ActionQuit,
	"q":      ActionQuit,
	"quit":   ActionQuit,

	// Controller/gamepad specific bindings
	"gamepad_dpad_down":  ActionMoveDown,
	"gamepad_dpad_left":  ActionMoveLeft,
	"gamepad_dpad_right": ActionMoveRight,
	"gamepad_dpad_up":    ActionMoveUp,
	"gamepad_x":          ActionHoe,
	"gamepad_y":          ActionPlant,
	"gamepad_b":          ActionWater,
	"gamepad_a":          ActionHarvest,
	"gamepad_start":      ActionSave,
}

// reserved codes keep their binding whatever SetSingleBinding is asked to do
var reserved = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"escape":      true,
}

// keyLabels names the multi-character keyboard codes. Any other keyboard code
// is a single printable character.
var keyLabels = map[string]string{
	"arrow_down":  "Down",
	"arrow_left":  "Left",
	"arrow_right": "Right",
	"arrow_up":    "Up",
	"space":       "Space",
	"enter":       "Enter",
	"escape":      "Esc",
	"f5":          "F5",
	"f9":          "F9",
}

// IsKeyCode reports whether code is a bindable keyboard key rather than a
// typed command word or a gamepad button. Single keys are a-z and 0-9.
func IsKeyCode(code string) bool {
	if _, ok := keyLabels[code]; ok {
		return true
	}
	if len(code) != 1 {
		return false
	}
	c := code[0]
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// IsReserved reports whether code is fixed to its action
func IsReserved(code string) bool {
	return reserved[code]
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IntentFor runs a code through all layers
func IntentFor(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()}))
}

// MoveDirection returns the grid direction of a movement action
func MoveDirection(a Action) (world.Direction, bool) {
	switch a {
	case ActionMoveDown:
		return world.Down, true
	case ActionMoveLeft:
		return world.Left, true
	case ActionMoveRight:
		return world.Right, true
	case ActionMoveUp:
		return world.Up, true
	default:
		return 0, false
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionMoveUp:
		return "Move Up"
	case ActionHoe:
		return "Hoe"
	case ActionPlant:
		return "Plant"
	case ActionWater:
		return "Water"
	case ActionHarvest:
		return "Harvest"
	case ActionSave:
		return "Save"
	case ActionDumpMap:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so listings don't shuffle between calls.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// ParseAction looks an action up by its lower-case name with spaces
// replaced by underscores, e.g. "hoe" or "dump_map".
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a := ActionMoveDown; a <= ActionQuit; a++ {
		if strings.ReplaceAll(strings.ToLower(ActionName(a)), " ", "_") == name {
			return a, true
		}
	}
	return ActionNone, false
}

// KeyLabel returns the display name of the first keyboard key bound to the
// action, or "?" when it has none.
func KeyLabel(action Action) string {
	for _, code := range GetBindingsByAction()[action] {
		if !IsKeyCode(code) {
			continue
		}
		if label, ok := keyLabels[code]; ok {
			return label
		}
		return strings.ToUpper(code)
	}
	return "?"
}

// SetSingleBinding replaces the keyboard keys bound to the given action with
// a single code. Command words and gamepad buttons are kept. Reserved codes
// are neither removed nor rebound.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] || !IsKeyCode(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
