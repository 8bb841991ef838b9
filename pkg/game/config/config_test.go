package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"farmstead/pkg/engine/input"
	"farmstead/pkg/engine/world"
	"farmstead/pkg/game/farm"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
	if got := cfg.StartPosition(); got != world.Pos(10, 7) {
		t.Errorf("StartPosition() = %v, want grid center (10, 7)", got)
	}
	if got := cfg.GrowthTable().Duration(farm.Wheat); got != 5000 {
		t.Errorf("wheat growth = %dms, want 5000", got)
	}
	if got := cfg.BackgroundColor(); got != (color.RGBA{0x4A, 0x5D, 0x3A, 0xFF}) {
		t.Errorf("BackgroundColor() = %v, want #4A5D3A", got)
	}
}

func TestParse_OverridesDefaults(t *testing.T) {
	data := []byte(`
farm:
  width: 10
  height: 8
  growth:
    wheat: 2s
farmer:
  start: {x: 1, y: 2}
  moveDuration: 100ms
renderer: tui
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}
	if d := cfg.Dimensions(); d.Width != 10 || d.Height != 8 {
		t.Errorf("Dimensions() = %+v, want 10x8", d)
	}
	if got := cfg.GrowthTable()[farm.Wheat]; got != 2*time.Second {
		t.Errorf("wheat growth = %v, want 2s", got)
	}
	if got := cfg.StartPosition(); got != world.Pos(1, 2) {
		t.Errorf("StartPosition() = %v, want (1, 2)", got)
	}
	if cfg.Farmer.MoveDuration != 100*time.Millisecond {
		t.Errorf("MoveDuration = %v, want 100ms", cfg.Farmer.MoveDuration)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("Window.Width = %d, want default 1024", cfg.Window.Width)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"zero width":      "farm: {width: 0}",
		"bad renderer":    "renderer: opengl",
		"start outside":   "farmer: {start: {x: 30, y: 1}}",
		"bad background":  "window: {background: green}",
		"negative growth": "farm: {growth: {wheat: -1s}}",
		"zero tile size":  "window: {tileSize: 0}",
		"unknown action":  "keys: {dig: d}",
		"reserved key":    "keys: {hoe: escape}",
		"word as key":     "keys: {hoe: hoe}",
		"duplicate key":   "keys: {hoe: j, plant: j}",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalid", doc, err)
			}
		})
	}
}

func TestApplyKeys(t *testing.T) {
	cfg, err := Parse([]byte("keys: {hoe: j, dump_map: m}"))
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}
	cfg.ApplyKeys()
	t.Cleanup(func() {
		input.SetSingleBinding(input.ActionHoe, "h")
		input.SetSingleBinding(input.ActionDumpMap, "f9")
	})

	if got := input.IntentFor(input.DeviceKeyboard, "j").Action; got != input.ActionHoe {
		t.Errorf("j = %s, want Hoe", input.ActionName(got))
	}
	if got := input.IntentFor(input.DeviceKeyboard, "m").Action; got != input.ActionDumpMap {
		t.Errorf("m = %s, want Dump Map", input.ActionName(got))
	}
	if got := input.IntentFor(input.DeviceKeyboard, "hoe").Action; got != input.ActionHoe {
		t.Errorf("hoe command = %s, want Hoe", input.ActionName(got))
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("farm: [")); err == nil {
		t.Error("Parse(malformed) = nil error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.yaml")
	if err := os.WriteFile(path, []byte("language: de\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.Language != "de" {
		t.Errorf("Language = %q, want de", cfg.Language)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) = nil error")
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal = %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(Default())) = %v", err)
	}
	if cfg.Farm.Growth[string(farm.Wheat)] != farm.WheatGrowthTime {
		t.Errorf("wheat growth after round trip = %v", cfg.Farm.Growth[string(farm.Wheat)])
	}
}

func TestParseHexColor(t *testing.T) {
	if _, err := ParseHexColor("#12345"); err == nil {
		t.Error("ParseHexColor(#12345) = nil error")
	}
	if _, err := ParseHexColor("#GG0000"); err == nil {
		t.Error("ParseHexColor(#GG0000) = nil error")
	}
	c, err := ParseHexColor("ff8000")
	if err != nil || c != (color.RGBA{255, 128, 0, 255}) {
		t.Errorf("ParseHexColor(ff8000) = (%v, %v)", c, err)
	}
}
