// Command steerdemo runs the steering behaviours in a debug window, or
// without one when -headless is set.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/steering-engine/engine/config"
	"github.com/1siamBot/steering-engine/engine/trace"
)

func main() {
	var (
		configPath = flag.String("config", config.DefaultFile, "steering tuning file; embedded defaults are used when it does not exist")
		headless   = flag.Bool("headless", false, "run without a window")
		ticks      = flag.Int("ticks", 600, "ticks to run in headless mode")
		level      = flag.String("log-level", "", "log level, overrides the config file")
		seed       = flag.Int64("seed", 1, "wander random seed")
		watch      = flag.Bool("watch", true, "reload the config file when it changes")
		tracePath  = flag.String("trace", "", "record agent kinematics to this file")
		traceEvery = flag.Uint64("trace-every", 1, "record one tick in this many")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("load config", "error", err)
	}

	logger, err := newLogger(cfg.Logging, *level)
	if err != nil {
		log.Fatal("configure logging", "error", err)
	}

	sim, err := NewSim(cfg, *configPath, *seed, logger)
	if err != nil {
		logger.Fatal("build scenario", "error", err)
	}

	var rec *trace.Recorder
	if *tracePath != "" {
		rec, err = trace.NewRecorder(*tracePath)
		if err != nil {
			logger.Fatal("open trace", "error", err)
		}
		rec.Every = *traceEvery
		sim.Loop.World.AddSystem(rec)
		defer closeTrace(rec, logger)
	}

	if *headless {
		logger.Info("running headless", "ticks", *ticks, "tick_rate", cfg.Simulation.TickRate)
		sim.Run(*ticks)
		sim.LogState()
		logger.Info("done", "tick", sim.Loop.CurrentTick(), "catches", sim.Catches)
		return
	}

	var watcher *config.Watcher
	if *watch {
		if _, statErr := os.Stat(*configPath); statErr == nil {
			watcher, err = config.WatchFile(*configPath)
			if err != nil {
				logger.Warn("config watch disabled", "error", err)
			} else {
				defer watcher.Close()
			}
		}
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Steering Engine")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewGame(sim, watcher)); err != nil {
		logger.Fatal("run game", "error", err)
	}
}

func closeTrace(rec *trace.Recorder, logger *log.Logger) {
	if err := rec.Close(); err != nil {
		logger.Error("close trace", "error", err)
		return
	}
	logger.Info("trace written", "frames", rec.Count())
}

func newLogger(cfg config.LoggingConfig, override string) (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "steerdemo",
	})

	name := cfg.Level
	if override != "" {
		name = override
	}
	if name != "" {
		lvl, err := log.ParseLevel(name)
		if err != nil {
			return nil, err
		}
		logger.SetLevel(lvl)
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	case "logfmt":
		logger.SetFormatter(log.LogfmtFormatter)
	}
	return logger, nil
}
