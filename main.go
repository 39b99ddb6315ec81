package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/edgebound/behaviors"
	"github.com/automoto/edgebound/config"
	"github.com/automoto/edgebound/scenes"
	"github.com/automoto/edgebound/shared/leveldata"
	"github.com/automoto/edgebound/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.String("level", "", "TMX level with Boundary and Bodies object groups (empty = random bodies)")
	noOverlay := flag.Bool("no-overlay", false, "Hide the debug overlay")
	flag.Parse()

	config.Debug.Overlay = !*noOverlay

	scene := sim.RandomScene(config.Sim.Width, config.Sim.Height, config.Sim.Bodies, config.Sim.Seed)
	if *level != "" {
		var err error
		scene, err = leveldata.LoadScene(os.DirFS(filepath.Dir(*level)), filepath.Base(*level))
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
	}

	world, err := sim.NewWorld(scene,
		behaviors.WithRestitution(config.EdgeCollision.Restitution),
		behaviors.WithFriction(config.EdgeCollision.Friction),
	)
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}
	defer world.Close()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("edgebound")
	ebiten.SetTPS(config.Sim.TickRate)

	if err := ebiten.RunGame(&Game{scene: scenes.NewSimScene(world)}); err != nil {
		log.Fatal(err)
	}
}
