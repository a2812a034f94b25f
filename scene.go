package thicket

import (
	"fmt"
	"log/slog"
	"time"
)

// State is the lifecycle state of a Scene's loop.
type State uint8

const (
	StateRunning State = iota // drawing frames
	StateStopped              // an exit signal was received; terminal
)

func (st State) String() string {
	switch st {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// SceneOption configures a Scene at construction.
type SceneOption func(*Scene)

// WithClock sets the clock source used for frame deltas. The default is
// NewWallClock.
func WithClock(c Clock) SceneOption {
	return func(s *Scene) { s.clock = NewFrameClock(c) }
}

// WithViewport sets the surface viewport size in pixels.
func WithViewport(width, height int) SceneOption {
	return func(s *Scene) { s.viewport = Viewport{Width: width, Height: height} }
}

// WithClearColor sets the background color.
func WithClearColor(c Color) SceneOption {
	return func(s *Scene) { s.clearColor = c }
}

// WithPanSpeed sets how far the pan moves per second of held key.
func WithPanSpeed(speed float32) SceneOption {
	return func(s *Scene) { s.pan.speed = speed }
}

// WithRecenterDuration sets how long, in seconds, KeyHome takes to ease the
// pan back to the origin. Zero snaps immediately.
func WithRecenterDuration(seconds float32) SceneOption {
	return func(s *Scene) { s.pan.recenterDuration = seconds }
}

// Scene owns the top-level shapes and drives the frame loop:
// poll events, draw all shapes, present, read input, advance the clock.
type Scene struct {
	backend Backend
	input   *injectedInput
	models  []Shape

	rc    *RenderContext
	pan   *panController
	clock *FrameClock
	state State

	viewport   Viewport
	clearColor Color

	debug           bool
	lastStats       frameStats
	runner          *TestRunner
	sink            EventSink
	screenshotQueue []string
}

// Defaults used when no option overrides them.
const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultPanSpeed = 0.25
)

// DefaultClearColor is the background color of a new scene.
var DefaultClearColor = Color{R: 0, G: 0.5, B: 0.5, A: 1}

// NewScene creates an empty, running scene drawing to b. The backend's
// viewport and clear color are set from the options.
func NewScene(b Backend, opts ...SceneOption) *Scene {
	if b == nil {
		panic("thicket: nil backend")
	}
	s := &Scene{
		backend:    b,
		input:      newInjectedInput(b),
		rc:         NewRenderContext(b, Pan{}),
		pan:        newPanController(DefaultPanSpeed, 0),
		viewport:   Viewport{Width: DefaultWidth, Height: DefaultHeight},
		clearColor: DefaultClearColor,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = NewFrameClock(nil)
	}
	b.SetViewport(s.viewport.Width, s.viewport.Height)
	b.SetClearColor(s.clearColor)
	return s
}

// Add appends shape to the scene. Shapes draw in the order they were added,
// so later shapes paint over earlier ones. Panics if shape is nil or already
// belongs to a composite or scene.
func (s *Scene) Add(shape Shape) {
	if shape == nil {
		panic("thicket: cannot add nil shape")
	}
	if !claimShape(shape) {
		panic("thicket: shape already has a parent")
	}
	s.models = append(s.models, shape)
}

// Models returns a copy of the top-level shapes in draw order.
func (s *Scene) Models() []Shape {
	out := make([]Shape, len(s.models))
	copy(out, s.models)
	return out
}

// Pan returns the current pan offset.
func (s *Scene) Pan() Pan {
	return s.pan.pan
}

// Delta returns the most recent frame delta in seconds.
func (s *Scene) Delta() float64 {
	return s.clock.Delta()
}

// Frames returns the number of completed loop iterations.
func (s *Scene) Frames() uint64 {
	return s.clock.Frames()
}

// State returns the loop state.
func (s *Scene) State() State {
	return s.state
}

// Viewport returns the viewport the backend was configured with.
func (s *Scene) Viewport() Viewport {
	return s.viewport
}

// SetDebugMode enables or disables per-frame stats logging at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Draw clears the surface, draws every shape in insertion order with the
// current pan offset, and presents the frame.
func (s *Scene) Draw() {
	var stats frameStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.backend.Clear()
	s.rc.begin(s.pan.pan)
	for _, m := range s.models {
		m.Draw(s.rc)
	}

	if s.debug {
		stats.drawTime = time.Since(t0)
		t0 = time.Now()
	}

	s.backend.Present()
	s.flushScreenshots()

	if s.debug {
		stats.presentTime = time.Since(t0)
		stats.triangles = s.rc.triangles
		stats.composites = s.rc.composites
		stats.maxDepth = s.rc.stack.maxDepth
		stats.models = len(s.models)
		s.lastStats = stats
	}
}

// HandleInput moves the pan offset according to the held direction keys,
// scaled by the last frame delta.
func (s *Scene) HandleInput() {
	s.pan.update(s.input, s.clock.Delta())
}

// Step runs one iteration of the loop: poll events, and unless an exit was
// requested draw, handle input and advance the clock. It reports false once
// the scene has stopped. An input polling failure is returned wrapped in
// ErrInput and leaves the scene running.
func (s *Scene) Step() (bool, error) {
	if s.state == StateStopped {
		return false, ErrStopped
	}
	if s.runner != nil {
		s.runner.step(s)
	}

	events, err := s.input.PollEvents()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInput, err)
	}
	for _, ev := range events {
		if ev.Type == EventQuit {
			s.state = StateStopped
			Logger().Info("scene stopped", slog.Uint64("frames", s.clock.Frames()))
			s.emit(SceneEvent{Type: SceneStopped, Frame: s.clock.Frames(), From: s.pan.pan, Pan: s.pan.pan})
			return false, nil
		}
	}

	s.Draw()

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	from := s.pan.pan
	s.HandleInput()
	s.clock.Tick()
	if s.pan.pan != from {
		s.emit(SceneEvent{Type: ScenePanned, Frame: s.clock.Frames(), From: from, Pan: s.pan.pan})
	}

	if s.debug {
		stats := s.lastStats
		stats.inputTime = time.Since(t0)
		stats.pan = s.pan.pan
		stats.delta = s.clock.Delta()
		stats.frame = s.clock.Frames()
		s.debugLog(stats)
		debugCheckDepth(stats)
	}
	return true, nil
}

// Run loops until the input source reports a quit event. It returns nil on a
// clean exit and a wrapped ErrInput if event polling fails.
func (s *Scene) Run() error {
	if s.state == StateStopped {
		return ErrStopped
	}
	Logger().Info("scene running",
		slog.Int("models", len(s.models)),
		slog.Int("width", s.viewport.Width),
		slog.Int("height", s.viewport.Height))
	for {
		running, err := s.Step()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
}
