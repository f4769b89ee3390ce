package main

import (
	"log"
	"os"

	"LocalSketchpad/internal/config"
	"LocalSketchpad/internal/sketch"
	"LocalSketchpad/internal/state"
	"LocalSketchpad/internal/ui"
)

const DefaultConfigFile = "sketchpad.toml"

func main() {
	path := DefaultConfigFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Starting sketchpad (session %s)", state.SessionID())
	tools := state.NewTools(cfg.ToolOptions())
	pad := sketch.New(cfg.Canvas.Width, cfg.Canvas.Height, tools)
	ui.RunApp(cfg, pad)
}
