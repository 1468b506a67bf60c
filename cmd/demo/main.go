package main

import (
	"os"

	"scene-lab/internal/engineconfig"
	"scene-lab/internal/env"
	"scene-lab/internal/graphics"
	"scene-lab/internal/logger"
)

func main() {
	envErr := env.Load(".env")
	prefs, cfgErr := engineconfig.Load()
	prefs.ApplyEnv()
	lg := logger.New(logger.ParseLevel(prefs.LogLevel))
	log := lg.Slog()
	if envErr != nil {
		log.Warn(".env not loaded", "err", envErr)
	}
	if cfgErr != nil {
		log.Warn("engine config not loaded, using defaults", "path", engineconfig.EngineConfigPath, "err", cfgErr)
	}

	a, err := newApp(prefs, log)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
	graphics.Run(prefs.Window, a.setup, a.update, a.draw)
}
