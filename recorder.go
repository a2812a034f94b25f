package thicket

import "github.com/go-gl/mathgl/mgl32"

// RecordedTriangle is one triangle captured by a Recorder, in normalized
// device coordinates.
type RecordedTriangle struct {
	Color    Color
	Vertices [3]mgl32.Vec3
}

// Recorder is a Backend that keeps the vertex stream in memory instead of
// drawing it. It never reports input or events. Useful for tests and for
// inspecting what a scene submits.
type Recorder struct {
	Viewport   Viewport
	ClearColor Color
	Clears     int
	Presents   int

	color     Color
	open      bool
	pending   []mgl32.Vec3
	frame     []RecordedTriangle
	presented []RecordedTriangle
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{color: ColorWhite}
}

func (r *Recorder) SetViewport(width, height int) {
	r.Viewport = Viewport{Width: width, Height: height}
}

func (r *Recorder) SetClearColor(c Color) {
	r.ClearColor = c
}

// Clear starts a new frame.
func (r *Recorder) Clear() {
	r.Clears++
	r.frame = r.frame[:0]
}

// Present snapshots the current frame.
func (r *Recorder) Present() {
	r.Presents++
	r.presented = append(r.presented[:0], r.frame...)
}

func (r *Recorder) SetColor(c Color) {
	r.color = c
}

// BeginTriangles opens a primitive. Panics if one is already open.
func (r *Recorder) BeginTriangles() {
	if r.open {
		panic("thicket: BeginTriangles inside an open primitive")
	}
	r.open = true
	r.pending = r.pending[:0]
}

// EmitVertex adds a vertex to the open primitive. Panics outside
// BeginTriangles/EndPrimitive.
func (r *Recorder) EmitVertex(v mgl32.Vec3) {
	if !r.open {
		panic("thicket: EmitVertex outside BeginTriangles")
	}
	r.pending = append(r.pending, v)
}

// EndPrimitive closes the primitive and records one triangle per three
// vertices. Panics if the vertex count is not a multiple of three.
func (r *Recorder) EndPrimitive() {
	if !r.open {
		panic("thicket: EndPrimitive without BeginTriangles")
	}
	if len(r.pending)%3 != 0 {
		panic("thicket: triangle primitive with incomplete vertex count")
	}
	for i := 0; i < len(r.pending); i += 3 {
		r.frame = append(r.frame, RecordedTriangle{
			Color:    r.color,
			Vertices: [3]mgl32.Vec3{r.pending[i], r.pending[i+1], r.pending[i+2]},
		})
	}
	r.open = false
}

func (r *Recorder) PollEvents() ([]Event, error) { return nil, nil }
func (r *Recorder) IsKeyDown(Key) bool           { return false }

// Triangles returns the triangles emitted since the last Clear.
func (r *Recorder) Triangles() []RecordedTriangle {
	out := make([]RecordedTriangle, len(r.frame))
	copy(out, r.frame)
	return out
}

// Presented returns the triangles of the last presented frame.
func (r *Recorder) Presented() []RecordedTriangle {
	out := make([]RecordedTriangle, len(r.presented))
	copy(out, r.presented)
	return out
}
