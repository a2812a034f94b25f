// Package ecs provides ECS adapters for thicket.
package ecs

import (
	"github.com/phanxgames/thicket"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType carries thicket scene notifications through a Donburi
// world. A scene publishes thicket.ScenePanned at the end of every frame
// whose input moved the pan, with From and Pan holding the offsets before
// and after, and a single thicket.SceneStopped when a quit event ends the
// loop. Frame is the number of completed frames at that point.
var SceneEventType = events.NewEventType[thicket.SceneEvent]()

// worldSink queues every scene event on its world. Delivery happens when the
// world's systems call SceneEventType.ProcessEvents or
// events.ProcessAllEvents, so handlers run on the ECS schedule rather than
// inside Scene.Step.
type worldSink struct {
	world donburi.World
}

// NewDonburiSink returns a thicket.EventSink that publishes to world. Attach
// it with Scene.SetEventSink.
func NewDonburiSink(world donburi.World) thicket.EventSink {
	return worldSink{world: world}
}

func (s worldSink) EmitEvent(ev thicket.SceneEvent) {
	SceneEventType.Publish(s.world, ev)
}
