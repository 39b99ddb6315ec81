// Package sim assembles a simulation world: bodies, the boundary, the edge
// collision behavior and the systems that step them.
package sim

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"

	"github.com/automoto/edgebound/behaviors"
	"github.com/automoto/edgebound/body"
	"github.com/automoto/edgebound/collision"
	"github.com/automoto/edgebound/components"
	cfg "github.com/automoto/edgebound/config"
	"github.com/automoto/edgebound/geometry"
	"github.com/automoto/edgebound/shared/gamemath"
	"github.com/automoto/edgebound/shared/leveldata"
	"github.com/automoto/edgebound/systems"
	"github.com/automoto/edgebound/systems/factory"
	"github.com/automoto/edgebound/topics"
	"github.com/yohamta/donburi"
)

// World owns a donburi world and everything attached to it. Step must be
// called from one goroutine; SetBoundary may be called from any.
type World struct {
	world     donburi.World
	edge      *behaviors.EdgeCollisionDetection
	behaviors []behaviors.Behavior
	handlers  []func(donburi.World, topics.CollisionsDetectedData)
	steps     int

	mu      sync.Mutex
	pending *leveldata.Rect
}

// NewWorld builds a world from scene. opts configure the boundary material.
func NewWorld(scene *leveldata.Scene, opts ...behaviors.EdgeOption) (*World, error) {
	w := donburi.NewWorld()

	obj := factory.NewBoundaryObject(scene.Boundary.X, scene.Boundary.Y, scene.Boundary.W, scene.Boundary.H)
	edge, err := behaviors.NewEdgeCollisionDetection(collision.FromObject(obj), opts...)
	if err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	factory.CreateBoundary(w, edge.Boundary())

	for _, spec := range scene.Bodies {
		factory.CreateBody(w, newBody(spec))
	}

	sw := &World{
		world:     w,
		edge:      edge,
		behaviors: []behaviors.Behavior{edge},
	}
	for _, b := range sw.behaviors {
		b.Connect(w)
	}

	sw.handlers = append(sw.handlers, systems.ResolveBoundaryCollisions, systems.RecordContacts)
	if cfg.Debug.LogCollisions {
		sw.handlers = append(sw.handlers, systems.LogCollisions)
	}
	for _, h := range sw.handlers {
		topics.CollisionsDetected.Subscribe(w, h)
	}

	log.Printf("World created: %d bodies, boundary %vx%v", len(scene.Bodies), scene.Boundary.W, scene.Boundary.H)
	return sw, nil
}

func newBody(spec leveldata.BodySpec) *body.Body {
	var shape geometry.Shape
	switch spec.Shape {
	case leveldata.ShapeCircle:
		shape = geometry.NewCircle(spec.W / 2)
	default:
		shape = geometry.NewBox(spec.W, spec.H)
	}

	b := body.New(spec.ID, gamemath.Vec2{X: spec.X, Y: spec.Y}, shape)
	b.Angle = spec.Angle
	b.Velocity = gamemath.Vec2{X: spec.VX, Y: spec.VY}
	b.AngularVelocity = spec.Spin
	b.Fixed = spec.Fixed
	b.Restitution = spec.Restitution
	b.Friction = spec.Friction
	b.RefreshAABB()
	return b
}

// Donburi returns the underlying donburi world.
func (w *World) Donburi() donburi.World {
	return w.world
}

// Edge returns the world's edge collision behavior.
func (w *World) Edge() *behaviors.EdgeCollisionDetection {
	return w.edge
}

// Bodies returns every body ordered by ID.
func (w *World) Bodies() []*body.Body {
	return systems.CollectBodies(w.world)
}

// Steps returns the number of physics steps run so far.
func (w *World) Steps() int {
	return w.steps
}

// Contacts returns the records published during the last step.
func (w *World) Contacts() []collision.Record {
	entry, ok := components.Contacts.First(w.world)
	if !ok {
		return nil
	}
	return components.Contacts.Get(entry).Records
}

// SetBoundary queues a new boundary. It takes effect before the next step,
// never during one.
func (w *World) SetBoundary(r leveldata.Rect) {
	w.mu.Lock()
	w.pending = &r
	w.mu.Unlock()
}

// ResizeBoundary queues moving every boundary edge outward by delta, or
// inward for a negative delta, keeping the center. Width and height stop at
// zero.
func (w *World) ResizeBoundary(delta float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var r leveldata.Rect
	if w.pending != nil {
		r = *w.pending
	} else {
		b := w.edge.Boundary()
		r = leveldata.Rect{X: b.Min.X, Y: b.Min.Y, W: b.Width(), H: b.Height()}
	}

	cx, cy := r.X+r.W/2, r.Y+r.H/2
	r.W = math.Max(0, r.W+2*delta)
	r.H = math.Max(0, r.H+2*delta)
	r.X, r.Y = cx-r.W/2, cy-r.H/2
	w.pending = &r
}

func (w *World) applyPendingBoundary() error {
	w.mu.Lock()
	r := w.pending
	w.pending = nil
	w.mu.Unlock()

	if r == nil {
		return nil
	}

	obj := factory.NewBoundaryObject(r.X, r.Y, r.W, r.H)
	if err := w.edge.SetBoundary(collision.FromObject(obj)); err != nil {
		return fmt.Errorf("set boundary: %w", err)
	}

	entry, ok := components.Boundary.First(w.world)
	if ok {
		components.Boundary.SetValue(entry, components.BoundaryData{Bounds: w.edge.Boundary()})
	}
	log.Printf("Boundary reconfigured to %+v", w.edge.Boundary())
	return nil
}

// Step advances the world by one tick.
func (w *World) Step() error {
	if err := w.applyPendingBoundary(); err != nil {
		return err
	}
	w.steps += systems.UpdatePhysics(w.world)
	return nil
}

// Close disconnects every behavior and subscriber from the world.
func (w *World) Close() {
	for _, b := range w.behaviors {
		b.Disconnect(w.world)
	}
	for _, h := range w.handlers {
		topics.CollisionsDetected.Unsubscribe(w.world, h)
	}
	w.handlers = nil
}

// RandomScene scatters n boxes and circles inside a w by h boundary.
func RandomScene(w, h float64, n int, seed int64) *leveldata.Scene {
	rng := rand.New(rand.NewSource(seed))
	scene := &leveldata.Scene{
		Boundary: leveldata.Rect{W: w, H: h},
	}

	for i := 0; i < n; i++ {
		size := 12 + rng.Float64()*24
		spec := leveldata.BodySpec{
			ID:          i + 1,
			Shape:       leveldata.ShapeKind(rng.Intn(2)),
			X:           size + rng.Float64()*(w-2*size),
			Y:           size + rng.Float64()*(h-2*size),
			W:           size,
			H:           size * (0.5 + rng.Float64()),
			Angle:       rng.Float64() * 2 * math.Pi,
			VX:          (rng.Float64()*2 - 1) * 200,
			VY:          (rng.Float64()*2 - 1) * 200,
			Spin:        (rng.Float64()*2 - 1) * 3,
			Restitution: 0.8 + rng.Float64()*0.2,
			Friction:    0.3,
		}
		scene.Bodies = append(scene.Bodies, spec)
	}
	return scene
}
