// Package canvas provides a headless thicket backend that rasterizes the
// vertex stream into an in-memory image with the gg software renderer.
//
// A Canvas never reports input, so scenes drawing to it are driven by
// injected key presses or a test script:
//
//	c := canvas.New(800, 600)
//	defer c.Close()
//	s := thicket.NewScene(c, thicket.WithViewport(800, 600))
//	s.Add(tree)
//	s.InjectQuit()
//	_ = s.Run()
//	_ = c.SavePNG("frame.png")
package canvas

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"

	"github.com/phanxgames/thicket"
)

// Option configures a Canvas.
type Option func(*Canvas)

// WithScreenshotDir sets where Screenshot writes PNG files. The default is
// thicket.DefaultScreenshotDir.
func WithScreenshotDir(dir string) Option {
	return func(c *Canvas) { c.dir = dir }
}

// Canvas is a thicket.Backend and thicket.Screenshotter drawing into a gg
// context. Each triangle is filled as its own closed path, so later
// triangles paint over earlier ones.
type Canvas struct {
	dc       *gg.Context
	viewport thicket.Viewport
	clear    thicket.Color
	dir      string

	color   thicket.Color
	open    bool
	pending []mgl32.Vec3

	triangles int
	presents  int
	err       error
}

// New creates a width x height canvas cleared to transparent black.
func New(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		dc:       gg.NewContext(width, height),
		viewport: thicket.Viewport{Width: width, Height: height},
		clear:    thicket.DefaultClearColor,
		dir:      thicket.DefaultScreenshotDir,
		color:    thicket.ColorWhite,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetViewport resizes the backing image. An invalid size is recorded and
// reported by Err.
func (c *Canvas) SetViewport(width, height int) {
	if err := c.dc.Resize(width, height); err != nil {
		c.fail(err)
		return
	}
	c.viewport = thicket.Viewport{Width: width, Height: height}
}

func (c *Canvas) SetClearColor(col thicket.Color) {
	c.clear = col
}

func (c *Canvas) Clear() {
	c.dc.ClearWithColor(gg.RGBA2(c.clear.R, c.clear.G, c.clear.B, c.clear.A))
}

// Present counts the frame. The image is always readable through Image.
func (c *Canvas) Present() {
	c.presents++
}

func (c *Canvas) SetColor(col thicket.Color) {
	c.color = col
}

func (c *Canvas) BeginTriangles() {
	c.open = true
	c.pending = c.pending[:0]
}

func (c *Canvas) EmitVertex(v mgl32.Vec3) {
	if c.open {
		c.pending = append(c.pending, v)
	}
}

// EndPrimitive fills one path per complete triangle. Leftover vertices are
// dropped.
func (c *Canvas) EndPrimitive() {
	if !c.open {
		return
	}
	c.open = false
	c.dc.SetRGBA(c.color.R, c.color.G, c.color.B, c.color.A)
	for i := 0; i+2 < len(c.pending); i += 3 {
		for j, v := range c.pending[i : i+3] {
			x, y := c.viewport.ToScreen(v)
			if j == 0 {
				c.dc.MoveTo(float64(x), float64(y))
			} else {
				c.dc.LineTo(float64(x), float64(y))
			}
		}
		c.dc.ClosePath()
		if err := c.dc.Fill(); err != nil {
			c.fail(fmt.Errorf("fill triangle: %w", err))
			continue
		}
		c.triangles++
	}
}

func (c *Canvas) PollEvents() ([]thicket.Event, error) { return nil, nil }
func (c *Canvas) IsKeyDown(thicket.Key) bool           { return false }

// Screenshot writes the current image as a PNG under the screenshot
// directory.
func (c *Canvas) Screenshot(label string) error {
	path, err := thicket.WriteScreenshot(c.dir, label, c.dc.Image())
	if err != nil {
		return err
	}
	thicket.Logger().Info("screenshot saved", slog.String("path", path))
	return nil
}

// Image returns a copy of the current pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the current pixels to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("%w: %w", thicket.ErrSurface, err)
	}
	return nil
}

// Triangles returns the number of triangles filled so far.
func (c *Canvas) Triangles() int {
	return c.triangles
}

// Presents returns the number of presented frames.
func (c *Canvas) Presents() int {
	return c.presents
}

// Err returns every rasterization failure recorded so far, wrapped in
// thicket.ErrSurface, or nil.
func (c *Canvas) Err() error {
	if c.err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", thicket.ErrSurface, c.err)
}

func (c *Canvas) fail(err error) {
	thicket.Logger().Warn("canvas draw failed", slog.Any("err", err))
	c.err = errors.Join(c.err, err)
}

// Close releases the gg context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
