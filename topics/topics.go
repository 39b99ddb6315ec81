// Package topics declares the simulation's event types. Events are scoped to
// a donburi.World, so every world carries its own subscribers.
package topics

import (
	"github.com/automoto/edgebound/body"
	"github.com/automoto/edgebound/collision"
	"github.com/yohamta/donburi/features/events"
)

// IntegrateVelocitiesData is published before bodies are integrated.
type IntegrateVelocitiesData struct {
	Bodies []*body.Body
	Dt     float64
}

// CollisionsDetectedData carries every boundary collision found in one step.
type CollisionsDetectedData struct {
	Collisions []collision.Record
}

var (
	IntegrateVelocities = events.NewEventType[IntegrateVelocitiesData]()
	CollisionsDetected  = events.NewEventType[CollisionsDetectedData]()
)
