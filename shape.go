package thicket

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Shape is anything the scene can draw. Draw must leave the context's
// transform stack as it found it.
type Shape interface {
	Draw(rc *RenderContext)
}

// owned is implemented by the built-in shapes so that a shape cannot be
// attached to two parents.
type owned interface {
	claim() bool
	release()
}

// shapeOwner tracks whether a shape already has a parent.
type shapeOwner struct {
	claimed bool
}

func (o *shapeOwner) claim() bool {
	if o.claimed {
		return false
	}
	o.claimed = true
	return true
}

func (o *shapeOwner) release() {
	o.claimed = false
}

// claimShape marks s as owned. It reports false if s already had an owner.
func claimShape(s Shape) bool {
	if o, ok := s.(owned); ok {
		return o.claim()
	}
	return true
}

// releaseShape undoes claimShape.
func releaseShape(s Shape) {
	if o, ok := s.(owned); ok {
		o.release()
	}
}

// --- Triangle ---

// defaultTriangle is the vertex data used by NewDefaultTriangle. It is copied
// into every instance.
var defaultTriangle = [3]mgl32.Vec3{{0, 1, 0}, {0, 0, 0}, {1, 1, 0}}

// Triangle is a single filled triangle: the leaf of the scene graph.
type Triangle struct {
	shapeOwner
	pose     Pose
	vertices [3]mgl32.Vec3
}

// NewTriangle creates a triangle from exactly three local-space vertices.
// The vertices are copied. Any other count fails with ErrInvalidGeometry.
func NewTriangle(pose Pose, vertices []mgl32.Vec3) (*Triangle, error) {
	if len(vertices) != 3 {
		return nil, fmt.Errorf("%w: triangle needs 3 vertices, got %d", ErrInvalidGeometry, len(vertices))
	}
	if err := pose.Validate(); err != nil {
		return nil, err
	}
	t := &Triangle{pose: pose}
	copy(t.vertices[:], vertices)
	return t, nil
}

// NewDefaultTriangle creates a right triangle with vertices (0,1,0), (0,0,0)
// and (1,1,0).
func NewDefaultTriangle(pose Pose) (*Triangle, error) {
	return NewTriangle(pose, defaultTriangle[:])
}

// MustTriangle is like NewTriangle but panics on error. Use it for literal
// scene data.
func MustTriangle(pose Pose, vertices ...mgl32.Vec3) *Triangle {
	t, err := NewTriangle(pose, vertices)
	if err != nil {
		panic(err)
	}
	return t
}

// Pose returns the triangle's pose.
func (t *Triangle) Pose() Pose {
	return t.pose
}

// Vertices returns a copy of the local-space vertices.
func (t *Triangle) Vertices() [3]mgl32.Vec3 {
	return t.vertices
}

// Draw applies the triangle's pose and emits its three vertices.
func (t *Triangle) Draw(rc *RenderContext) {
	rc.WithPose(t.pose, func() {
		rc.emitTriangles(t.vertices[:])
	})
}

// --- Composite ---

// Composite is an ordered group of shapes drawn in the composite's local
// frame. Children are fixed at construction.
type Composite struct {
	shapeOwner
	pose     Pose
	children []Shape
}

// NewComposite creates a group from the given children, drawn in order.
// A nil child, a child that already belongs to another group, or an invalid
// pose fails with ErrInvalidGeometry.
func NewComposite(pose Pose, children ...Shape) (*Composite, error) {
	if err := pose.Validate(); err != nil {
		return nil, err
	}
	for i, child := range children {
		if child == nil {
			return nil, fmt.Errorf("%w: child %d is nil", ErrInvalidGeometry, i)
		}
	}
	for i, child := range children {
		if !claimShape(child) {
			for _, prev := range children[:i] {
				releaseShape(prev)
			}
			return nil, fmt.Errorf("%w: child %d already has a parent", ErrInvalidGeometry, i)
		}
	}
	c := &Composite{pose: pose, children: make([]Shape, len(children))}
	copy(c.children, children)
	return c, nil
}

// Pose returns the composite's pose.
func (c *Composite) Pose() Pose {
	return c.pose
}

// Children returns a copy of the child list.
func (c *Composite) Children() []Shape {
	out := make([]Shape, len(c.children))
	copy(out, c.children)
	return out
}

// NumChildren returns the number of children.
func (c *Composite) NumChildren() int {
	return len(c.children)
}

// Draw applies the composite's pose and draws every child on top of it.
// Color is not inherited: each triangle paints with its own pose color.
func (c *Composite) Draw(rc *RenderContext) {
	rc.composites++
	rc.WithPose(c.pose, func() {
		for _, child := range c.children {
			child.Draw(rc)
		}
	})
}
