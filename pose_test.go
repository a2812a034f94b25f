package thicket

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func near(a, b float32) bool {
	return mgl32.Abs(a-b) < epsilon
}

func vecNear(a, b mgl32.Vec3) bool {
	return near(a.X(), b.X()) && near(a.Y(), b.Y()) && near(a.Z(), b.Z())
}

func TestNewPoseDefaults(t *testing.T) {
	p := NewPose()
	if p.Position != (mgl32.Vec3{}) {
		t.Errorf("Position = %v, want origin", p.Position)
	}
	if p.Orientation != 0 || p.Scale != 1 {
		t.Errorf("Orientation, Scale = %v, %v; want 0, 1", p.Orientation, p.Scale)
	}
	if p.Color != ColorWhite {
		t.Errorf("Color = %v, want white", p.Color)
	}
	if m := p.Matrix(Pan{}); m != mgl32.Ident4() {
		t.Errorf("Matrix = %v, want identity", m)
	}
}

func TestPoseBuildersCopy(t *testing.T) {
	base := NewPose()
	p := base.At(1, 2, 3).Rotated(45).Scaled(2).Tinted(RGB(1, 0, 0))
	if base != NewPose() {
		t.Errorf("builders mutated the receiver: %+v", base)
	}
	want := Pose{Position: mgl32.Vec3{1, 2, 3}, Orientation: 45, Scale: 2, Color: RGB(1, 0, 0)}
	if p != want {
		t.Errorf("pose = %+v, want %+v", p, want)
	}
}

// --- Pose.Matrix ---

func TestPoseMatrix(t *testing.T) {
	tests := []struct {
		name string
		pose Pose
		pan  Pan
		in   mgl32.Vec3
		want mgl32.Vec3
	}{
		{"translate", NewPose().At(1, 2, 0), Pan{}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 2, 0}},
		{"translate vertex", NewPose().At(1, 2, 0), Pan{}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{2, 3, 0}},
		{"rotate 90", NewPose().Rotated(90), Pan{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{"rotate -45", NewPose().Rotated(-45), Pan{}, mgl32.Vec3{0, 1, 0},
			mgl32.Vec3{float32(math.Sqrt2 / 2), float32(math.Sqrt2 / 2), 0}},
		{"rotate 180", NewPose().Rotated(180), Pan{}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{-1, -1, 0}},
		{"scale", NewPose().Scaled(0.5), Pan{}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{0.5, 0.5, 0}},
		// S first, then R, then T.
		{"scale rotate translate", NewPose().At(1, 0, 0).Rotated(90).Scaled(2), Pan{},
			mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 2, 0}},
		{"pan added to position", NewPose().At(1, 2, 0), Pan{X: 0.5, Y: -1}, mgl32.Vec3{0, 0, 0},
			mgl32.Vec3{1.5, 1, 0}},
		{"pan not scaled", NewPose().Scaled(0.2), Pan{X: 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1.2, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transformPoint(tt.pose.Matrix(tt.pan), tt.in)
			if !vecNear(got, tt.want) {
				t.Errorf("%+v.Matrix(%+v) * %v = %v, want %v", tt.pose, tt.pan, tt.in, got, tt.want)
			}
		})
	}
}

// --- Pose.Validate ---

func TestPoseValidate(t *testing.T) {
	tests := []struct {
		name  string
		scale float32
		ok    bool
	}{
		{"unit", 1, true},
		{"small", 0.15, true},
		{"large", 100, true},
		{"zero", 0, false},
		{"negative", -1, false},
		{"inf", float32(math.Inf(1)), false},
		{"nan", float32(math.NaN()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewPose().Scaled(tt.scale).Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("Validate() = %v, want ErrInvalidGeometry", err)
			}
		})
	}
}

func TestPoseValidateColor(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		ok    bool
	}{
		{"white", ColorWhite, true},
		{"black transparent", Color{}, true},
		{"bark", RGB(0.6, 0.2, 0.2), true},
		{"red above one", RGB(1.5, 0, 0), false},
		{"green negative", RGB(0, -0.1, 0), false},
		{"alpha above one", Color{0, 0, 0, 2}, false},
		{"nan blue", RGB(0, 0, math.NaN()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewPose().Tinted(tt.color).Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("Validate() = %v, want ErrInvalidGeometry", err)
			}
		})
	}
}

func TestNewTriangleRejectsColorOutOfRange(t *testing.T) {
	tri, err := NewDefaultTriangle(NewPose().Tinted(RGB(2, 0, 0)))
	if !errors.Is(err, ErrInvalidGeometry) || tri != nil {
		t.Errorf("NewDefaultTriangle = %v, %v; want nil, ErrInvalidGeometry", tri, err)
	}
}
