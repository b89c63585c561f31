package ecs

import (
	"github.com/phanxgames/panzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StateChangeEventType is the Donburi event type for gesture state changes.
var StateChangeEventType = events.NewEventType[panzoom.StateChange]()

type donburiObserver struct {
	world donburi.World
}

// NewDonburiObserver creates a StateObserver backed by a Donburi world.
// Changes are queued on StateChangeEventType and delivered by
// ProcessEvents, in the order the recognizer produced them.
func NewDonburiObserver(world donburi.World) panzoom.StateObserver {
	return &donburiObserver{world: world}
}

func (o *donburiObserver) StateChanged(c panzoom.StateChange) {
	StateChangeEventType.Publish(o.world, c)
}
