package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/edgebound/config"
	"github.com/automoto/edgebound/sim"
	"github.com/automoto/edgebound/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// How far one key press moves each boundary edge
const boundaryNudge = 16.0

// SimScene shows a running simulation world.
type SimScene struct {
	world  *sim.World
	ecs    *ecs.ECS
	paused bool
	err    error
	once   sync.Once
}

func NewSimScene(world *sim.World) *SimScene {
	return &SimScene{world: world}
}

func (s *SimScene) Update() error {
	s.once.Do(s.configure)
	s.handleInput()
	s.ecs.Update()
	return s.err
}

func (s *SimScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *SimScene) configure() {
	s.ecs = ecs.NewECS(s.world.Donburi())

	s.ecs.AddSystem(s.updateWorld)

	s.ecs.AddRenderer(render.LayerBodies, render.DrawBodies)
	s.ecs.AddRenderer(render.LayerOverlay, render.DrawDebug)
}

func (s *SimScene) updateWorld(_ *ecs.ECS) {
	if s.paused || s.err != nil {
		return
	}
	s.err = s.world.Step()
}

// Space pauses, O toggles the overlay, the bracket keys shrink and grow
// the boundary.
func (s *SimScene) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.paused = !s.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}

	var delta float64
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		delta = -boundaryNudge
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		delta = boundaryNudge
	}
	if delta == 0 {
		return
	}

	s.world.ResizeBoundary(delta)
}
