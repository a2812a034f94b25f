package canvas

import (
	"errors"
	"image/color"
	"os"
	"testing"

	"github.com/phanxgames/thicket"
)

const size = 100

func rgbaAt(c *Canvas, x, y int) color.RGBA {
	return color.RGBAModel.Convert(c.Image().At(x, y)).(color.RGBA)
}

func defaultTri(t *testing.T, pose thicket.Pose) *thicket.Triangle {
	t.Helper()
	tri, err := thicket.NewDefaultTriangle(pose)
	if err != nil {
		t.Fatalf("NewDefaultTriangle: %v", err)
	}
	return tri
}

func newScene(t *testing.T, opts ...Option) (*thicket.Scene, *Canvas) {
	t.Helper()
	c := New(size, size, opts...)
	t.Cleanup(func() { c.Close() })
	s := thicket.NewScene(c,
		thicket.WithViewport(size, size),
		thicket.WithClearColor(thicket.RGB(0, 0, 0)))
	return s, c
}

func TestCanvasFillsTriangle(t *testing.T) {
	s, c := newScene(t)
	s.Add(defaultTri(t, thicket.NewPose().Tinted(thicket.RGB(1, 0, 0))))
	s.Draw()

	// NDC (0.25, 0.75) lies inside the default triangle.
	if got := rgbaAt(c, 62, 12); got.R < 200 || got.G > 50 || got.B > 50 {
		t.Errorf("inside pixel = %v, want red", got)
	}
	// NDC (-0.5, -0.5) is background.
	if got := rgbaAt(c, 25, 75); got.R > 50 || got.G > 50 || got.B > 50 {
		t.Errorf("outside pixel = %v, want black", got)
	}
	if c.Triangles() != 1 {
		t.Errorf("Triangles = %d, want 1", c.Triangles())
	}
	if c.Presents() != 1 {
		t.Errorf("Presents = %d, want 1", c.Presents())
	}
}

func TestCanvasLaterShapesPaintOver(t *testing.T) {
	s, c := newScene(t)
	s.Add(defaultTri(t, thicket.NewPose().Tinted(thicket.RGB(1, 0, 0))))
	s.Add(defaultTri(t, thicket.NewPose().Tinted(thicket.RGB(0, 0, 1))))
	s.Draw()

	if got := rgbaAt(c, 62, 12); got.B < 200 || got.R > 50 {
		t.Errorf("overlap pixel = %v, want blue", got)
	}
}

func TestCanvasPoseMovesTriangle(t *testing.T) {
	s, c := newScene(t)
	s.Add(defaultTri(t, thicket.NewPose().At(-1, -1, 0).Tinted(thicket.RGB(0, 1, 0))))
	s.Draw()

	// NDC (-0.75, -0.25) is inside the moved triangle.
	if got := rgbaAt(c, 12, 62); got.G < 200 {
		t.Errorf("moved pixel = %v, want green", got)
	}
	if got := rgbaAt(c, 62, 12); got.G > 50 {
		t.Errorf("original position = %v, want background", got)
	}
}

func TestCanvasClearColor(t *testing.T) {
	_, c := newScene(t)
	c.SetClearColor(thicket.RGB(1, 1, 1))
	c.Clear()
	if got := rgbaAt(c, 50, 50); got.R < 250 || got.G < 250 || got.B < 250 {
		t.Errorf("cleared pixel = %v, want white", got)
	}
}

func TestCanvasScreenshot(t *testing.T) {
	dir := t.TempDir()
	s, _ := newScene(t, WithScreenshotDir(dir))
	s.Add(defaultTri(t, thicket.NewPose()))
	s.Screenshot("first frame")
	s.Draw()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("screenshots = %d, want 1", len(entries))
	}
}

func TestCanvasInvalidViewport(t *testing.T) {
	c := New(size, size)
	defer c.Close()
	c.SetViewport(0, 10)
	if err := c.Err(); !errors.Is(err, thicket.ErrSurface) {
		t.Errorf("Err = %v, want ErrSurface", err)
	}
}

func TestCanvasIncompletePrimitiveDropped(t *testing.T) {
	c := New(size, size)
	defer c.Close()
	c.BeginTriangles()
	c.EndPrimitive()
	c.BeginTriangles()
	c.EndPrimitive()
	if c.Triangles() != 0 {
		t.Errorf("Triangles = %d, want 0", c.Triangles())
	}
	if err := c.Err(); err != nil {
		t.Errorf("Err = %v", err)
	}
}
