package thicket

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Surface is the window or image the scene paints into.
type Surface interface {
	SetViewport(width, height int)
	SetClearColor(c Color)
	// Clear fills the surface with the clear color.
	Clear()
	// Present shows the finished frame. It may block until the next frame
	// can be displayed.
	Present()
}

// Rasterizer receives filled triangles. Vertices arrive fully transformed, in
// normalized device coordinates.
type Rasterizer interface {
	SetColor(c Color)
	BeginTriangles()
	EmitVertex(v mgl32.Vec3)
	EndPrimitive()
}

// Input reports window events and the current keyboard state.
type Input interface {
	PollEvents() ([]Event, error)
	IsKeyDown(k Key) bool
}

// Clock measures the time between successive Tick calls.
type Clock interface {
	Tick() time.Duration
}

// Backend bundles the collaborators a Scene needs from a platform.
type Backend interface {
	Surface
	Rasterizer
	Input
}

// Screenshotter is implemented by backends that can save the last presented
// frame to disk.
type Screenshotter interface {
	Screenshot(label string) error
}
