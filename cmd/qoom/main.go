package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"qoom/internal/config"
	"qoom/internal/game"
	"qoom/internal/logger"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", config.DefaultPath, "settings file")
	levelPath := flag.String("level", "", "level file, overrides the settings file")
	noclip := flag.Bool("noclip", false, "start in free flight")
	logLevel := flag.String("log-level", "", "log level, overrides the settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	logger.Init(firstNonEmpty(*logLevel, cfg.Log.Level), cfg.Log.Format)
	if err != nil {
		logger.Log.WithError(err).Warn("Using default settings")
	}

	if *levelPath != "" {
		cfg.LevelPath = *levelPath
	}
	if *noclip {
		cfg.Controller = "noclip"
	}

	if err := cfg.Validate(); err != nil {
		logger.Log.WithError(err).Fatal("Refusing to start")
	}

	g := game.New(cfg)
	g.Run()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
