package scratch

import (
	"testing"

	"github.com/automoto/edgebound/shared/gamemath"
)

func TestAcquireDoneBalances(t *testing.T) {
	pool := NewPool()

	pad := pool.Acquire()
	if got := pool.InUse(); got != 1 {
		t.Fatalf("InUse() after Acquire = %d, want 1", got)
	}
	pad.Done()
	if got := pool.InUse(); got != 0 {
		t.Fatalf("InUse() after Done = %d, want 0", got)
	}

	pad.Done()
	if got := pool.InUse(); got != 0 {
		t.Errorf("InUse() after second Done = %d, want 0", got)
	}
}

func TestPadValuesAreDistinctAndReset(t *testing.T) {
	pool := NewPool()
	pad := pool.Acquire()

	a := pad.Vector()
	b := pad.Vector()
	if a == b {
		t.Fatal("Vector() returned the same pointer twice within one pad")
	}
	*a = gamemath.Vec2{X: 1, Y: 2}
	tr := pad.Transform()
	tr.SetRotation(1)
	pad.Done()

	pad = pool.Acquire()
	defer pad.Done()
	if v := pad.Vector(); *v != (gamemath.Vec2{}) {
		t.Errorf("recycled vector = %v, want zero", *v)
	}
	if tr := pad.Transform(); tr.Angle != 0 || tr.Rotate(gamemath.Vec2{X: 1}) != (gamemath.Vec2{X: 1}) {
		t.Errorf("recycled transform not reset: %+v", tr)
	}
}

func TestManyScopedAcquisitions(t *testing.T) {
	pool := NewPool()
	for i := 0; i < 1000; i++ {
		func() {
			pad := pool.Acquire()
			defer pad.Done()
			pad.Vector()
			pad.Transform()
		}()
	}
	if got := pool.InUse(); got != 0 {
		t.Errorf("InUse() = %d after scoped loop, want 0", got)
	}
}
