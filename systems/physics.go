package systems

import (
	"sort"

	"github.com/automoto/edgebound/body"
	"github.com/automoto/edgebound/components"
	cfg "github.com/automoto/edgebound/config"
	"github.com/automoto/edgebound/shared/gamemath"
	"github.com/automoto/edgebound/tags"
	"github.com/automoto/edgebound/topics"
	"github.com/yohamta/donburi"
)

// CollectBodies returns every body in w ordered by ID.
func CollectBodies(w donburi.World) []*body.Body {
	var bodies []*body.Body
	tags.Body.Each(w, func(e *donburi.Entry) {
		bodies = append(bodies, components.RigidBody.Get(e).Body)
	})
	sort.Slice(bodies, func(i, j int) bool {
		return bodies[i].ID < bodies[j].ID
	})
	return bodies
}

// UpdatePhysics runs one tick, split into cfg.Sim.SubSteps equal steps.
// It returns the number of steps run.
func UpdatePhysics(w donburi.World) int {
	steps := cfg.Sim.SubSteps
	if steps < 1 {
		steps = 1
	}
	dt := 1.0 / float64(cfg.Sim.TickRate) / float64(steps)

	for i := 0; i < steps; i++ {
		StepPhysics(w, dt)
	}
	return steps
}

// StepPhysics runs a single step: behaviors see the bodies before
// integration, collision subscribers get the results, then bodies move.
func StepPhysics(w donburi.World, dt float64) {
	bodies := CollectBodies(w)

	clearContacts(w)

	topics.IntegrateVelocities.Publish(w, topics.IntegrateVelocitiesData{
		Bodies: bodies,
		Dt:     dt,
	})
	topics.IntegrateVelocities.ProcessEvents(w)
	topics.CollisionsDetected.ProcessEvents(w)

	for _, b := range bodies {
		integrateBody(b, dt)
	}
}

func integrateBody(b *body.Body, dt float64) {
	if b.Fixed {
		return
	}

	b.Velocity.Y += cfg.Physics.Gravity * dt
	b.Velocity.X = gamemath.ClampSpeed(b.Velocity.X, cfg.Physics.MaxSpeed)
	b.Velocity.Y = gamemath.ClampSpeed(b.Velocity.Y, cfg.Physics.MaxSpeed)
	b.AngularVelocity = gamemath.ClampSpeed(b.AngularVelocity, cfg.Physics.MaxAngularSpeed)

	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.Angle += b.AngularVelocity * dt
	b.RefreshAABB()
}
