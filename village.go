package thicket

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	leafGreen = RGB(0, 1, 0)
	barkBrown = RGB(0.6, 0.2, 0.2)
	wallGray  = RGB(0.8, 0.8, 0.8)
	glassBlue = RGB(0.2, 0.2, 0.6)
	roofRed   = RGB(0.9, 0.2, 0.2)
)

// Vertex sets shared by the house parts.
var (
	panelVerts = []mgl32.Vec3{{0, 0, 0}, {1, 1.2, 0}, {0, 1.2, 0}}
	doorVerts  = []mgl32.Vec3{{0, 0, 0}, {1, 1.5, 0}, {0, 1.5, 0}}
	roofVerts  = []mgl32.Vec3{{0, 0, 0}, {0.5, 0.7, 0}, {1, 0, 0}}
)

func part(x, y, scale, deg float32, c Color) Pose {
	return Pose{Position: mgl32.Vec3{x, y, 0}, Orientation: deg, Scale: scale, Color: c}
}

// NewTree builds a tree: three stacked green canopy triangles turned -45° and
// a two-triangle brown trunk. Only the position, orientation and scale of
// pose matter; every part paints with its own color.
func NewTree(pose Pose) (*Composite, error) {
	leaf := func(y float32) *Triangle {
		return MustTriangle(part(0, y, 0.5, -45, leafGreen), defaultTriangle[:]...)
	}
	return NewComposite(pose,
		leaf(0),
		leaf(0.25),
		leaf(0.5),
		MustTriangle(part(0.25, -0.25, 0.25, 0, barkBrown), defaultTriangle[:]...),
		MustTriangle(part(0.5, 0, 0.25, -180, barkBrown), defaultTriangle[:]...),
	)
}

// NewHouse builds a house from nine triangles: two wall panels, four window
// panes, a two-triangle door and the roof.
func NewHouse(pose Pose) (*Composite, error) {
	return NewComposite(pose,
		MustTriangle(part(0, -0.25, 0.5, 0, wallGray), panelVerts...),
		MustTriangle(part(0.5, 0.35, 0.5, 180, wallGray), panelVerts...),
		MustTriangle(part(0.025, 0.125, 0.15, 0, glassBlue), panelVerts...),
		MustTriangle(part(0.175, 0.305, 0.15, 180, glassBlue), panelVerts...),
		MustTriangle(part(0.325, 0.125, 0.15, 0, glassBlue), panelVerts...),
		MustTriangle(part(0.475, 0.305, 0.15, 180, glassBlue), panelVerts...),
		MustTriangle(part(0.175, -0.25, 0.15, 0, barkBrown), doorVerts...),
		MustTriangle(part(0.325, -0.025, 0.15, 180, barkBrown), doorVerts...),
		MustTriangle(part(-0.05, 0.35, 0.6, 0, roofRed), roofVerts...),
	)
}

// Default village sizes.
const (
	DefaultTrees  = 500
	DefaultHouses = 20
)

const (
	villageScale  = 0.2
	villageExtent = 5
)

// Populate adds trees and then houses to s at uniformly random positions in
// [-5, 5] on both axes, all at scale 0.2. Houses are added last so they paint
// over the trees.
func Populate(s *Scene, rng *rand.Rand, trees, houses int) error {
	place := func() Pose {
		x := float32(rng.Float64()*2*villageExtent - villageExtent)
		y := float32(rng.Float64()*2*villageExtent - villageExtent)
		return NewPose().At(x, y, 0).Scaled(villageScale)
	}
	for range trees {
		t, err := NewTree(place())
		if err != nil {
			return err
		}
		s.Add(t)
	}
	for range houses {
		h, err := NewHouse(place())
		if err != nil {
			return err
		}
		s.Add(h)
	}
	return nil
}
