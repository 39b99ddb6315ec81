// Package render draws the simulation with ebiten.
package render

import (
	"image/color"

	"github.com/automoto/edgebound/body"
	"github.com/automoto/edgebound/components"
	cfg "github.com/automoto/edgebound/config"
	"github.com/automoto/edgebound/geometry"
	"github.com/automoto/edgebound/shared/gamemath"
	"github.com/automoto/edgebound/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	LayerBodies ecs.LayerID = iota
	LayerOverlay
)

// DrawBodies draws every body's hull. Fixed bodies are grey.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	for _, b := range systems.CollectBodies(ecs.World) {
		c := cfg.LightBlue
		if b.Fixed {
			c = cfg.Grey
		}
		drawHull(screen, b, c)
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	boundaryEntry, ok := components.Boundary.First(ecs.World)
	if !ok {
		return // No boundary yet
	}
	bounds := components.Boundary.Get(boundaryEntry).Bounds
	vector.StrokeRect(screen,
		float32(bounds.Min.X), float32(bounds.Min.Y),
		float32(bounds.Width()), float32(bounds.Height()),
		1, cfg.White, false)

	if cfg.Debug.DrawAABBs {
		for _, b := range systems.CollectBodies(ecs.World) {
			box := b.AABB()
			min := box.Min()
			vector.StrokeRect(screen,
				float32(min.X), float32(min.Y),
				float32(box.HalfX*2), float32(box.HalfY*2),
				1, cfg.Cyan, false)
		}
	}

	if !cfg.Debug.DrawContacts {
		return
	}
	contactsEntry, ok := components.Contacts.First(ecs.World)
	if !ok {
		return
	}
	for _, r := range components.Contacts.Get(contactsEntry).Records {
		p := r.ContactPoint()
		end := p.Add(r.Norm.Scale(float64(cfg.Debug.NormalLength)))
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(end.X), float32(end.Y), 1, cfg.Yellow, false)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), cfg.Debug.ContactRadius, cfg.Red, false)
	}
}

func drawHull(screen *ebiten.Image, b *body.Body, c color.Color) {
	switch shape := b.Geometry.(type) {
	case *geometry.Circle:
		vector.StrokeCircle(screen, float32(b.Position.X), float32(b.Position.Y), float32(shape.Radius()), 1, c, true)
		// Spoke so rotation is visible
		spoke := b.Position.Add(gamemath.Vec2{X: shape.Radius()}.Rotate(b.Angle))
		vector.StrokeLine(screen, float32(b.Position.X), float32(b.Position.Y), float32(spoke.X), float32(spoke.Y), 1, c, true)
	case *geometry.Polygon:
		verts := shape.Vertices()
		for i, v := range verts {
			next := verts[(i+1)%len(verts)]
			a := b.Position.Add(v.Rotate(b.Angle))
			z := b.Position.Add(next.Rotate(b.Angle))
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(z.X), float32(z.Y), 1, c, true)
		}
	default:
		vector.DrawFilledCircle(screen, float32(b.Position.X), float32(b.Position.Y), 2, c, false)
	}
}
