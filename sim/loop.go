package sim

import (
	"context"
	"log"
	"time"
)

// Loop steps a World at a fixed tick rate.
type Loop struct {
	world    *World
	tickRate int
	maxSteps int
	stopChan chan struct{}
}

// NewLoop returns a loop for world. maxSteps <= 0 runs until stopped.
func NewLoop(world *World, tickRate, maxSteps int) *Loop {
	if tickRate < 1 {
		tickRate = 1
	}
	return &Loop{
		world:    world,
		tickRate: tickRate,
		maxSteps: maxSteps,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until ctx is done, Stop is called, maxSteps ticks have run or a
// step fails.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Simulation loop started at %d ticks/second", l.tickRate)

	ticks := 0
	for {
		select {
		case <-ctx.Done():
			log.Println("Simulation loop stopped")
			return ctx.Err()
		case <-l.stopChan:
			log.Println("Simulation loop stopped")
			return nil
		case <-ticker.C:
			if err := l.world.Step(); err != nil {
				return err
			}
			ticks++
			if l.maxSteps > 0 && ticks >= l.maxSteps {
				log.Printf("Simulation loop finished after %d ticks", ticks)
				return nil
			}
		}
	}
}

// Stop ends Run. It must be called at most once.
func (l *Loop) Stop() {
	close(l.stopChan)
}
