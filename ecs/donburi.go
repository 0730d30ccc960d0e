// Package ecs provides ECS adapters for panzoom.
package ecs

import (
	"github.com/phanxgames/panzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for panzoom gesture events.
// Subscribe to this in your ECS systems to receive drag, pan and zoom events.
var GestureEventType = events.NewEventType[panzoom.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Gesture events are published to GestureEventType and can be
// consumed with Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) panzoom.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event panzoom.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
