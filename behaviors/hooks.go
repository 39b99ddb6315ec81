package behaviors

import (
	"log"
	"sort"

	"github.com/automoto/edgebound/topics"
	"github.com/yohamta/donburi"
)

// donburi matches subscribers by function pointer, and every method value or
// closure of the same func shares one. Behaviors therefore never subscribe
// themselves: each world gets one dispatcher and a list of attached behaviors
// kept on a singleton entity.
type stepHooksData struct {
	behaviors []Behavior
}

var stepHooks = donburi.NewComponentType[stepHooksData]()

// attach adds b to w's step hooks, keeping them ordered by descending
// priority. Behaviors of equal priority run in attach order.
func attach(w donburi.World, b Behavior) {
	entry, ok := stepHooks.First(w)
	if !ok {
		entry = w.Entry(w.Create(stepHooks))
		topics.IntegrateVelocities.Subscribe(w, dispatchStep)
	}

	hooks := stepHooks.Get(entry)
	for _, h := range hooks.behaviors {
		if h == b {
			return
		}
	}
	hooks.behaviors = append(hooks.behaviors, b)
	sort.SliceStable(hooks.behaviors, func(i, j int) bool {
		return hooks.behaviors[i].Priority() > hooks.behaviors[j].Priority()
	})
}

// detach removes b from w's step hooks. The dispatcher goes away with the
// last behavior.
func detach(w donburi.World, b Behavior) {
	entry, ok := stepHooks.First(w)
	if !ok {
		return
	}

	hooks := stepHooks.Get(entry)
	for i, h := range hooks.behaviors {
		if h == b {
			hooks.behaviors = append(hooks.behaviors[:i], hooks.behaviors[i+1:]...)
			break
		}
	}
	if len(hooks.behaviors) > 0 {
		return
	}

	topics.IntegrateVelocities.Unsubscribe(w, dispatchStep)
	w.Remove(entry.Entity())
}

// attached returns w's behaviors in run order.
func attached(w donburi.World) []Behavior {
	entry, ok := stepHooks.First(w)
	if !ok {
		return nil
	}
	return append([]Behavior(nil), stepHooks.Get(entry).behaviors...)
}

// A behavior failing mid-step leaves the world inconsistent, so it panics.
func dispatchStep(w donburi.World, evt topics.IntegrateVelocitiesData) {
	for _, b := range attached(w) {
		if err := b.Step(evt.Bodies, evt.Dt); err != nil {
			log.Panicf("Behavior %T: %v", b, err)
		}
	}
}
