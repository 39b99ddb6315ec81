// Package scratch hands out short-lived vectors and transforms from a pool so
// per-step math doesn't allocate.
package scratch

import (
	"sync"
	"sync/atomic"

	"github.com/automoto/edgebound/shared/gamemath"
)

// Pool recycles Pads. The zero value is not usable; use NewPool.
type Pool struct {
	pads  sync.Pool
	inUse atomic.Int64
}

func NewPool() *Pool {
	p := &Pool{}
	p.pads.New = func() any {
		return &Pad{
			vectors:    make([]*gamemath.Vec2, 0, 4),
			transforms: make([]*gamemath.Transform, 0, 1),
		}
	}
	return p
}

// Acquire returns a clean pad. Callers must call Done exactly once,
// normally with defer.
func (p *Pool) Acquire() *Pad {
	pad := p.pads.Get().(*Pad)
	pad.pool = p
	p.inUse.Add(1)
	return pad
}

// InUse reports how many pads have been acquired but not released.
func (p *Pool) InUse() int64 {
	return p.inUse.Load()
}

func (p *Pool) release(pad *Pad) {
	p.inUse.Add(-1)
	p.pads.Put(pad)
}

// Pad is a scoped set of temporaries. Values returned by a pad are only valid
// until Done.
type Pad struct {
	pool *Pool

	vectors []*gamemath.Vec2
	nvec    int

	transforms []*gamemath.Transform
	ntrans     int
}

// Vector returns a zeroed vector owned by the pad.
func (p *Pad) Vector() *gamemath.Vec2 {
	if p.nvec == len(p.vectors) {
		p.vectors = append(p.vectors, &gamemath.Vec2{})
	}
	v := p.vectors[p.nvec]
	p.nvec++
	*v = gamemath.Vec2{}
	return v
}

// Transform returns an identity transform owned by the pad.
func (p *Pad) Transform() *gamemath.Transform {
	if p.ntrans == len(p.transforms) {
		p.transforms = append(p.transforms, &gamemath.Transform{})
	}
	t := p.transforms[p.ntrans]
	p.ntrans++
	t.Reset()
	return t
}

// Done returns the pad to its pool. Calling Done twice is a no-op.
func (p *Pad) Done() {
	if p.pool == nil {
		return
	}
	pool := p.pool
	p.pool = nil
	p.nvec = 0
	p.ntrans = 0
	pool.release(p)
}
