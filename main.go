package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"farmstead/pkg/game/config"
	"farmstead/pkg/game/gameplay"
	"farmstead/pkg/game/i18n"
	"farmstead/pkg/game/renderer"
	ebitenrenderer "farmstead/pkg/game/renderer/ebiten"
	"farmstead/pkg/game/renderer/tui"
	"farmstead/pkg/game/save"
	"farmstead/pkg/game/state"
)

// loadConfig reads the config file if one was given, otherwise the defaults
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newRenderer builds the front end named in the config
func newRenderer(cfg *config.Config) renderer.Renderer {
	if cfg.Renderer == config.RendererTUI {
		return tui.New()
	}
	return ebitenrenderer.New(cfg)
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML config file")
	rendererName := flag.String("renderer", "", "front end: ebiten or tui (overrides config)")
	lang := flag.String("lang", "", "UI language (overrides config)")
	load := flag.Bool("load", false, "continue from the save slot")
	logPath := flag.String("log", "", "write the log to this file")
	printConfig := flag.Bool("print-config", false, "print the effective config and exit")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *rendererName != "" {
		cfg.Renderer = *rendererName
	}
	if *lang != "" {
		cfg.Language = *lang
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if *printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	if err := i18n.SetLanguage(cfg.Language); err != nil {
		log.Printf("[Main] %v, using %q", err, i18n.DefaultLanguage)
	}

	cfg.ApplyKeys()
	save.SetStore(save.Open(save.AppName, cfg.SaveSlot))

	r := newRenderer(cfg)
	if err := r.Init(); err != nil {
		return fmt.Errorf("init %s renderer: %w", r.Name(), err)
	}
	renderer.SetRenderer(r)

	g := state.NewGameFromConfig(cfg, r.Textures())
	defer g.Farmer.Destroy()

	if *load {
		if err := gameplay.LoadGame(g); err != nil && !errors.Is(err, save.ErrNoSave) {
			return err
		}
	}

	log.Printf("[Main] %dx%d farm, %s renderer", cfg.Farm.Width, cfg.Farm.Height, r.Name())
	return r.Run(g)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "farmstead:", err)
		os.Exit(1)
	}
}
