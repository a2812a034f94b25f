package thicket

import "github.com/go-gl/mathgl/mgl32"

// stackFrame is one level of the transform stack: the composed transform and
// the active paint color at that level.
type stackFrame struct {
	transform mgl32.Mat4
	color     Color
}

// matrixStack is a LIFO stack of composed transforms. The bottom frame is the
// identity with the default color and is never popped.
type matrixStack struct {
	frames   []stackFrame
	maxDepth int
}

func newMatrixStack() *matrixStack {
	s := &matrixStack{frames: make([]stackFrame, 1, 16)}
	s.frames[0] = stackFrame{transform: mgl32.Ident4(), color: ColorWhite}
	return s
}

// push duplicates the top frame.
func (s *matrixStack) push() {
	s.frames = append(s.frames, s.frames[len(s.frames)-1])
	if d := s.depth(); d > s.maxDepth {
		s.maxDepth = d
	}
}

// pop discards the top frame. Panics on an unbalanced pop.
func (s *matrixStack) pop() {
	if len(s.frames) == 1 {
		panic("thicket: transform stack underflow")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// compose post-multiplies the top transform by m.
func (s *matrixStack) compose(m mgl32.Mat4) {
	top := &s.frames[len(s.frames)-1]
	top.transform = top.transform.Mul4(m)
}

func (s *matrixStack) setColor(c Color) {
	s.frames[len(s.frames)-1].color = c
}

func (s *matrixStack) top() stackFrame {
	return s.frames[len(s.frames)-1]
}

// depth is the number of pushed frames above the base.
func (s *matrixStack) depth() int {
	return len(s.frames) - 1
}

// reset drops every pushed frame and clears the high-water mark.
func (s *matrixStack) reset() {
	s.frames = s.frames[:1]
	s.maxDepth = 0
}
