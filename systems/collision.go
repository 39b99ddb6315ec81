package systems

import (
	"log"

	"github.com/automoto/edgebound/components"
	cfg "github.com/automoto/edgebound/config"
	"github.com/automoto/edgebound/shared/gamemath"
	"github.com/automoto/edgebound/topics"
	"github.com/yohamta/donburi"
)

// ResolveBoundaryCollisions pushes bodies back inside the boundary and
// bounces them off the wall. Each record is handled on its own, so a body
// in a corner is corrected on both axes.
func ResolveBoundaryCollisions(w donburi.World, evt topics.CollisionsDetectedData) {
	for _, r := range evt.Collisions {
		b := r.BodyA
		if b.Fixed {
			continue
		}

		b.Position = b.Position.Sub(r.MTV)

		// Only bounce bodies still moving into the wall
		vn := b.Velocity.Dot(r.Norm)
		if vn > 0 {
			e := gamemath.CombineRestitution(b.Restitution, r.BodyB.Restitution)
			normalImpulse := (1 + e) * vn
			b.Velocity = b.Velocity.Sub(r.Norm.Scale(normalImpulse))

			// Coulomb friction: tangential change bounded by mu times the normal impulse
			tangent := r.Norm.Perp()
			vt := b.Velocity.Dot(tangent)
			mu := b.Friction * r.BodyB.Friction
			dvt := gamemath.ApplyFriction(vt, mu*normalImpulse) - vt
			b.Velocity = b.Velocity.Add(tangent.Scale(dvt))

			// Off-center contacts turn some of the friction into spin
			b.AngularVelocity += cfg.Physics.SpinTransfer * r.Pos.Cross(tangent.Scale(dvt))
		}

		b.RefreshAABB()
	}
}

// RecordContacts keeps the latest batch for the debug overlay.
func RecordContacts(w donburi.World, evt topics.CollisionsDetectedData) {
	entry, ok := components.Contacts.First(w)
	if !ok {
		return
	}
	contacts := components.Contacts.Get(entry)
	contacts.Records = append(contacts.Records, evt.Collisions...)
	contacts.Total += len(evt.Collisions)
}

// LogCollisions prints a summary of every batch.
func LogCollisions(w donburi.World, evt topics.CollisionsDetectedData) {
	for _, r := range evt.Collisions {
		log.Printf("Body %d hit %s edge: overlap %.3f, contact (%.2f, %.2f)",
			r.BodyA.ID, r.Edge, r.Overlap, r.ContactPoint().X, r.ContactPoint().Y)
	}
}

func clearContacts(w donburi.World) {
	entry, ok := components.Contacts.First(w)
	if !ok {
		return
	}
	contacts := components.Contacts.Get(entry)
	contacts.Records = nil
	contacts.Step++
}
