package thicket

// SceneEventType identifies a scene notification.
type SceneEventType uint8

const (
	ScenePanned  SceneEventType = iota // the pan offset changed this frame
	SceneStopped                       // the loop received an exit signal
)

func (t SceneEventType) String() string {
	switch t {
	case ScenePanned:
		return "panned"
	case SceneStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// SceneEvent is a notification published to an EventSink.
type SceneEvent struct {
	Type  SceneEventType
	Frame uint64 // completed frames when the event fired
	From  Pan    // pan before the change; equal to Pan for SceneStopped
	Pan   Pan    // pan after the change
}

// EventSink receives scene notifications. Attach one with SetEventSink to
// bridge the scene into an external system such as an ECS world.
type EventSink interface {
	EmitEvent(SceneEvent)
}

// SetEventSink attaches sink to the scene. Pass nil to detach.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

func (s *Scene) emit(ev SceneEvent) {
	if s.sink != nil {
		s.sink.EmitEvent(ev)
	}
}
