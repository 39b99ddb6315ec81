package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/automoto/edgebound/collision"
	"github.com/automoto/edgebound/shared/leveldata"
)

func oneBoxScene(x, y, vx float64) *leveldata.Scene {
	return &leveldata.Scene{
		Boundary: leveldata.Rect{W: 100, H: 100},
		Bodies: []leveldata.BodySpec{{
			ID:          1,
			Shape:       leveldata.ShapeBox,
			X:           x,
			Y:           y,
			W:           20,
			H:           20,
			VX:          vx,
			Restitution: 1,
		}},
	}
}

func newTestWorld(t *testing.T, scene *leveldata.Scene) *World {
	t.Helper()
	w, err := NewWorld(scene)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	t.Cleanup(w.Close)
	return w
}

func TestStepBouncesOffRightEdge(t *testing.T) {
	w := newTestWorld(t, oneBoxScene(95, 50, 60))

	if err := w.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	contacts := w.Contacts()
	if len(contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(contacts))
	}
	if contacts[0].Edge != collision.EdgeRight || contacts[0].Overlap != 5 {
		t.Errorf("contact = %v overlap %v, want right edge overlap 5", contacts[0].Edge, contacts[0].Overlap)
	}

	b := w.Bodies()[0]
	if b.Velocity.X >= 0 {
		t.Errorf("velocity X = %v, want the body moving left after the bounce", b.Velocity.X)
	}
	if b.AABB().Max().X > 100 {
		t.Errorf("body still past the right edge: AABB max X = %v", b.AABB().Max().X)
	}
	if w.Steps() != 1 {
		t.Errorf("Steps() = %d, want 1", w.Steps())
	}
}

func TestStepWithoutContacts(t *testing.T) {
	w := newTestWorld(t, oneBoxScene(50, 50, 0))
	if err := w.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if n := len(w.Contacts()); n != 0 {
		t.Errorf("got %d contacts, want 0", n)
	}
}

func TestStepEmptyScene(t *testing.T) {
	w := newTestWorld(t, &leveldata.Scene{Boundary: leveldata.Rect{W: 100, H: 100}})
	for i := 0; i < 3; i++ {
		if err := w.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if len(w.Bodies()) != 0 || len(w.Contacts()) != 0 {
		t.Error("empty scene produced bodies or contacts")
	}
}

func TestFixedBodiesStayPut(t *testing.T) {
	scene := oneBoxScene(100, 100, 0)
	scene.Bodies[0].Fixed = true
	w := newTestWorld(t, scene)

	if err := w.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	b := w.Bodies()[0]
	if b.Position.X != 100 || b.Position.Y != 100 {
		t.Errorf("fixed body moved to %v", b.Position)
	}
	if n := len(w.Contacts()); n != 0 {
		t.Errorf("fixed body produced %d contacts", n)
	}
}

func TestSetBoundaryAppliesBeforeNextStep(t *testing.T) {
	w := newTestWorld(t, oneBoxScene(95, 50, 0))

	w.SetBoundary(leveldata.Rect{W: 200, H: 100})
	if w.Edge().Boundary().Max.X != 100 {
		t.Fatal("boundary changed before the next step")
	}

	if err := w.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if w.Edge().Boundary().Max.X != 200 {
		t.Errorf("boundary max X = %v, want 200", w.Edge().Boundary().Max.X)
	}
	if n := len(w.Contacts()); n != 0 {
		t.Errorf("got %d contacts inside the widened boundary", n)
	}
}

func TestSetBoundaryInvalid(t *testing.T) {
	w := newTestWorld(t, oneBoxScene(50, 50, 0))
	w.SetBoundary(leveldata.Rect{W: -10, H: 100})

	err := w.Step()
	if !errors.Is(err, collision.ErrInvalidBoundary) {
		t.Fatalf("Step err = %v, want ErrInvalidBoundary", err)
	}
	if w.Edge().Boundary().Max.X != 100 {
		t.Errorf("invalid boundary replaced the old one: %+v", w.Edge().Boundary())
	}
}

func TestNewWorldInvalidBoundary(t *testing.T) {
	_, err := NewWorld(&leveldata.Scene{Boundary: leveldata.Rect{W: -1, H: 10}})
	if !errors.Is(err, collision.ErrInvalidBoundary) {
		t.Errorf("err = %v, want ErrInvalidBoundary", err)
	}
}

func TestCloseDetachesDetection(t *testing.T) {
	w, err := NewWorld(oneBoxScene(95, 50, 0))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	w.Close()

	if w.Edge().Connected() {
		t.Error("edge behavior still connected after Close")
	}
	if err := w.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if n := len(w.Contacts()); n != 0 {
		t.Errorf("got %d contacts after Close, want 0", n)
	}
}

func TestRandomSceneIsDeterministic(t *testing.T) {
	a := RandomScene(640, 360, 8, 42)
	b := RandomScene(640, 360, 8, 42)
	if len(a.Bodies) != 8 || len(b.Bodies) != 8 {
		t.Fatalf("got %d and %d bodies, want 8", len(a.Bodies), len(b.Bodies))
	}
	for i := range a.Bodies {
		if a.Bodies[i] != b.Bodies[i] {
			t.Errorf("body %d differs between runs with the same seed", i)
		}
	}
}

func TestRandomSceneStartsInside(t *testing.T) {
	w := newTestWorld(t, RandomScene(640, 360, 20, 7))
	bounds := w.Edge().Boundary()
	for _, b := range w.Bodies() {
		box := b.AABB()
		if box.Min().X < bounds.Min.X || box.Min().Y < bounds.Min.Y || box.Max().X > bounds.Max.X || box.Max().Y > bounds.Max.Y {
			t.Errorf("body %d spawned outside the boundary: %+v", b.ID, box)
		}
	}
}

func TestLoopRunsMaxSteps(t *testing.T) {
	w := newTestWorld(t, oneBoxScene(50, 50, 0))
	loop := NewLoop(w, 1000, 3)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if w.Steps() != 3 {
		t.Errorf("Steps() = %d, want 3", w.Steps())
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	w := newTestWorld(t, oneBoxScene(50, 50, 0))
	loop := NewLoop(w, 1000, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := loop.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run err = %v, want context.Canceled", err)
	}
}

func TestLoopStop(t *testing.T) {
	w := newTestWorld(t, oneBoxScene(50, 50, 0))
	loop := NewLoop(w, 1000, 0)
	loop.Stop()
	if err := loop.Run(context.Background()); err != nil {
		t.Errorf("Run after Stop = %v, want nil", err)
	}
}

func TestResizeBoundaryStopsAtZero(t *testing.T) {
	w := newTestWorld(t, &leveldata.Scene{Boundary: leveldata.Rect{W: 640, H: 360}})

	for i := 1; i <= 12; i++ {
		w.ResizeBoundary(-16)
		if err := w.Step(); err != nil {
			t.Fatalf("shrink %d: Step = %v", i, err)
		}
	}

	b := w.Edge().Boundary()
	if b.Width() != 256 || b.Height() != 0 {
		t.Errorf("boundary = %v x %v, want 256 x 0", b.Width(), b.Height())
	}
	if cx, cy := (b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2; cx != 320 || cy != 180 {
		t.Errorf("center = (%v, %v), want (320, 180)", cx, cy)
	}
}

func TestResizeBoundaryQueuedTwice(t *testing.T) {
	w := newTestWorld(t, &leveldata.Scene{Boundary: leveldata.Rect{W: 100, H: 100}})

	w.ResizeBoundary(10)
	w.ResizeBoundary(10)
	if err := w.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	b := w.Edge().Boundary()
	if b.Min.X != -20 || b.Max.X != 120 || b.Min.Y != -20 || b.Max.Y != 120 {
		t.Errorf("boundary = %+v, want (-20,-20)..(120,120)", b)
	}
}
