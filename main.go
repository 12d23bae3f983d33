package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"CurveBoard/internal/config"
	"CurveBoard/internal/ui"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	log.Printf("Starting CurveBoard, writing to %s on exit", cfg.Out)
	ui.RunApp(cfg)
}
