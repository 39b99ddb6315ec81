package behaviors

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/automoto/edgebound/body"
	"github.com/automoto/edgebound/collision"
	cfg "github.com/automoto/edgebound/config"
	"github.com/automoto/edgebound/scratch"
	"github.com/automoto/edgebound/topics"
	"github.com/yohamta/donburi"
)

const edgeCollisionPriority = 12

// EdgeCollisionDetection reports bodies that touch or cross the world
// boundary. It only detects; resolving the collisions is left to whoever
// subscribes to topics.CollisionsDetected.
type EdgeCollisionDetection struct {
	restitution float64
	friction    float64
	pool        *scratch.Pool

	detector *collision.Detector
	dummy    *body.Body
	boundary atomic.Pointer[collision.Boundary]

	world donburi.World
}

// EdgeOption configures an EdgeCollisionDetection.
type EdgeOption func(*EdgeCollisionDetection)

// WithRestitution sets the boundary's restitution.
func WithRestitution(r float64) EdgeOption {
	return func(e *EdgeCollisionDetection) {
		e.restitution = r
	}
}

// WithFriction sets the boundary's coefficient of friction.
func WithFriction(cof float64) EdgeOption {
	return func(e *EdgeCollisionDetection) {
		e.friction = cof
	}
}

// WithScratchPool shares a scratch pool with other detectors.
func WithScratchPool(p *scratch.Pool) EdgeOption {
	return func(e *EdgeCollisionDetection) {
		e.pool = p
	}
}

// NewEdgeCollisionDetection builds the behavior for the boundary described by
// src. An empty src fails with collision.ErrNoBoundary.
func NewEdgeCollisionDetection(src collision.Source, opts ...EdgeOption) (*EdgeCollisionDetection, error) {
	e := &EdgeCollisionDetection{
		restitution: cfg.EdgeCollision.Restitution,
		friction:    cfg.EdgeCollision.Friction,
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.SetBoundary(src); err != nil {
		return nil, fmt.Errorf("edge collision detection: %w", err)
	}

	e.detector = collision.NewDetector(e.pool)
	e.dummy = body.NewDummy(e.restitution, e.friction)
	return e, nil
}

// SetBoundary replaces the boundary. Call it between steps; a step in
// progress keeps the boundary it started with. On error the previous
// boundary stays in place.
func (e *EdgeCollisionDetection) SetBoundary(src collision.Source) error {
	b, err := collision.NewBoundary(src)
	if err != nil {
		return err
	}
	e.boundary.Store(&b)
	return nil
}

// Boundary returns the current boundary.
func (e *EdgeCollisionDetection) Boundary() collision.Boundary {
	return *e.boundary.Load()
}

// Dummy returns the fixed body that stands in for the boundary in records.
func (e *EdgeCollisionDetection) Dummy() *body.Body {
	return e.dummy
}

// ScratchPool returns the pool backing the detector's temporaries.
func (e *EdgeCollisionDetection) ScratchPool() *scratch.Pool {
	return e.detector.Pool()
}

func (e *EdgeCollisionDetection) Priority() int {
	return edgeCollisionPriority
}

// Connected reports whether the behavior is subscribed to a world.
func (e *EdgeCollisionDetection) Connected() bool {
	return e.world != nil
}

// Connect hooks the behavior into w's pre-integration event. A behavior is
// connected to at most one world; connecting again does nothing until it is
// disconnected.
func (e *EdgeCollisionDetection) Connect(w donburi.World) {
	if e.world != nil {
		return
	}
	attach(w, e)
	e.world = w
	log.Printf("Edge collision detection connected (boundary %+v)", e.Boundary())
}

// Disconnect unhooks the behavior from the world it is connected to. The
// argument is ignored in favor of that world, so a mismatched call cannot
// leave a stale hook behind.
func (e *EdgeCollisionDetection) Disconnect(_ donburi.World) {
	if e.world == nil {
		return
	}
	detach(e.world, e)
	e.world = nil
	log.Println("Edge collision detection disconnected")
}

// Detect checks every movable body against the boundary and returns all
// records in body order.
func (e *EdgeCollisionDetection) Detect(bodies []*body.Body) ([]collision.Record, error) {
	bounds := e.Boundary()

	var collisions []collision.Record
	for _, b := range bodies {
		if b.Fixed {
			continue
		}

		var err error
		collisions, err = e.detector.AppendDetect(collisions, b, bounds, e.dummy)
		if err != nil {
			return nil, err
		}
	}
	return collisions, nil
}

// Step detects collisions and publishes them as a single
// topics.CollisionsDetected event. Nothing is published when no body
// touches the boundary.
func (e *EdgeCollisionDetection) Step(bodies []*body.Body, dt float64) error {
	if e.world == nil {
		return ErrNotConnected
	}

	collisions, err := e.Detect(bodies)
	if err != nil {
		return err
	}
	if len(collisions) == 0 {
		return nil
	}

	topics.CollisionsDetected.Publish(e.world, topics.CollisionsDetectedData{
		Collisions: collisions,
	})
	return nil
}
