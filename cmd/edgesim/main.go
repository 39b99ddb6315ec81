package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/edgebound/behaviors"
	cfg "github.com/automoto/edgebound/config"
	"github.com/automoto/edgebound/shared/leveldata"
	"github.com/automoto/edgebound/sim"
)

func main() {
	level := flag.String("level", "", "TMX level with Boundary and Bodies object groups (empty = random bodies)")
	tickRate := flag.Int("tickrate", cfg.Sim.TickRate, "Simulation steps per second")
	steps := flag.Int("steps", 600, "Ticks to run before exiting (0 = until interrupted)")
	width := flag.Float64("width", cfg.Sim.Width, "Boundary width for random scenes")
	height := flag.Float64("height", cfg.Sim.Height, "Boundary height for random scenes")
	bodies := flag.Int("bodies", cfg.Sim.Bodies, "Body count for random scenes")
	seed := flag.Int64("seed", cfg.Sim.Seed, "Seed for random scenes")
	restitution := flag.Float64("restitution", cfg.EdgeCollision.Restitution, "Boundary restitution")
	cof := flag.Float64("cof", cfg.EdgeCollision.Friction, "Boundary coefficient of friction")
	verbose := flag.Bool("v", false, "Log every boundary collision")
	flag.Parse()

	cfg.Sim.TickRate = *tickRate
	cfg.Debug.LogCollisions = *verbose

	var scene *leveldata.Scene
	if *level != "" {
		var err error
		scene, err = leveldata.LoadScene(os.DirFS(filepath.Dir(*level)), filepath.Base(*level))
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
	} else {
		scene = sim.RandomScene(*width, *height, *bodies, *seed)
	}

	world, err := sim.NewWorld(scene,
		behaviors.WithRestitution(*restitution),
		behaviors.WithFriction(*cof),
	)
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}
	defer world.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := sim.NewLoop(world, *tickRate, *steps)
	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Simulation error: %v", err)
	}

	log.Printf("Ran %d steps", world.Steps())
}
