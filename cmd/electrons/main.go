package main

import (
	"context"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-electron-funnel/internal/game"
	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "path to a JSON config file (defaults are used when empty)")
	schemaFile := flag.String("schema", "", "path to the JSON schema (the embedded one is used when empty)")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one")
	flag.Parse()

	ctx := context.Background()
	bootLogger := log.New(log.InfoLevel, os.Stdout)

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			bootLogger.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	logger := cfg.Logger()

	system, err := actor.NewActorSystem("ElectronFunnel",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		logger.Fatalf("failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		logger.Fatalf("failed to start actor system: %v", err)
	}
	defer system.Stop(ctx)

	var opts []simulation.Option
	if *seed != 0 {
		opts = append(opts, simulation.WithSeed(*seed))
	}
	g, err := game.New(ctx, cfg, system, opts...)
	if err != nil {
		logger.Fatal(err)
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Electron Funnel")
	ebiten.SetTPS(cfg.TicksPerSec)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal(err)
	}
}
