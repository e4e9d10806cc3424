package main

import (
	"flag"
	"fmt"
	"os"

	"sysdash/internal/collector"
	"sysdash/internal/config"
	"sysdash/internal/record"
	"sysdash/ui/tui"
)

func main() {
	configPath := flag.String("config", "", "path to the config file (default ~/.config/sysdash/config.toml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	col := collector.NewSystemCollector(collector.Config{
		ProcessLimit:       cfg.ProcessLimit,
		CollectTemperature: cfg.CollectTemperature,
		CollectBattery:     cfg.CollectBattery,
	})

	var recorder *record.Recorder
	if !cfg.RecordOff {
		recorder, err = record.Open(cfg.RecordPath, record.WithRetention(cfg.Retention))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening metrics recorder: %v\n", err)
			os.Exit(1)
		}
		defer recorder.Close()
	}

	if err := tui.Start(col, col, recorder, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
