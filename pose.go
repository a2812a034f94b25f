package thicket

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pose is the placement and paint state of a shape relative to its parent.
// Poses are values; shapes copy them at construction and never change them.
type Pose struct {
	Position mgl32.Vec3
	// Orientation is the rotation in degrees about the axis perpendicular to
	// the drawing plane, counter-clockwise.
	Orientation float32
	// Scale is applied uniformly to all three axes. Must be > 0.
	Scale float32
	Color Color
}

// NewPose returns a pose at the origin with no rotation, unit scale and
// white color.
func NewPose() Pose {
	return Pose{Scale: 1, Color: ColorWhite}
}

// At returns a copy of p moved to (x, y, z).
func (p Pose) At(x, y, z float32) Pose {
	p.Position = mgl32.Vec3{x, y, z}
	return p
}

// Rotated returns a copy of p with the given orientation in degrees.
func (p Pose) Rotated(deg float32) Pose {
	p.Orientation = deg
	return p
}

// Scaled returns a copy of p with the given uniform scale.
func (p Pose) Scaled(s float32) Pose {
	p.Scale = s
	return p
}

// Tinted returns a copy of p with the given color.
func (p Pose) Tinted(c Color) Pose {
	p.Color = c
	return p
}

// Validate reports ErrInvalidGeometry when the scale is not a positive finite
// number or a color channel is outside [0, 1].
func (p Pose) Validate() error {
	s := float64(p.Scale)
	if !(s > 0) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalidGeometry, p.Scale)
	}
	if !p.Color.inRange() {
		return fmt.Errorf("%w: color %v has a channel outside [0, 1]", ErrInvalidGeometry, p.Color)
	}
	return nil
}

// Matrix computes the local transform of the pose with the pan offset added
// to its position.
//
// Composition order:
//
//	Translate(Position + pan) -> Rotate(Orientation about Z) -> Scale(Scale)
//
// so a local point v maps to T·R·S·v.
func (p Pose) Matrix(pan Pan) mgl32.Mat4 {
	t := p.Position.Add(pan.Vec())
	m := mgl32.Translate3D(t.X(), t.Y(), t.Z())
	if p.Orientation != 0 {
		m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(p.Orientation)))
	}
	if p.Scale != 1 {
		m = m.Mul4(mgl32.Scale3D(p.Scale, p.Scale, p.Scale))
	}
	return m
}

// transformPoint applies a transform to a position.
func transformPoint(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(v.Vec4(1)).Vec3()
}
