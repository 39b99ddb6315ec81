// Package behaviors holds world behaviors: components that attach to a
// simulation world, listen to its step events and publish results back.
package behaviors

import (
	"errors"

	"github.com/automoto/edgebound/body"
	"github.com/yohamta/donburi"
)

var ErrNotConnected = errors.New("behaviors: behavior is not connected to a world")

// Behavior is a pluggable per-step world component. Construction performs
// its initialization.
type Behavior interface {
	// Priority orders the behaviors connected to one world; higher runs
	// first.
	Priority() int

	// Connect subscribes the behavior to w's step events.
	Connect(w donburi.World)

	// Disconnect removes every subscription made by Connect.
	Disconnect(w donburi.World)

	// Step runs the behavior once for the given bodies.
	Step(bodies []*body.Body, dt float64) error
}
