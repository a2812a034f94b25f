package thicket

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVertices bounds the vertices submitted per DrawTriangles32 call.
const maxBatchVertices = 3 * 8192

// ebitenKeys maps scene keys to Ebitengine keys.
var ebitenKeys = [numKeys]ebiten.Key{
	KeyUp:    ebiten.KeyArrowUp,
	KeyDown:  ebiten.KeyArrowDown,
	KeyLeft:  ebiten.KeyArrowLeft,
	KeyRight: ebiten.KeyArrowRight,
	KeyHome:  ebiten.KeyHome,
}

// Window is the Ebitengine backend. It opens a desktop window when Run is
// called and paints each frame with batched DrawTriangles32 calls through a
// white pixel, so triangle color comes entirely from vertex colors.
type Window struct {
	cfg RunConfig

	screen   *ebiten.Image
	viewport Viewport
	clear    Color

	color      Color
	open       bool
	primStart  int
	batchVerts []ebiten.Vertex
	batchInds  []uint32

	fps *fpsOverlay
}

// NewWindow creates the Ebitengine backend from cfg. Nothing is shown until
// Run.
func NewWindow(cfg RunConfig) *Window {
	w := &Window{
		cfg:      cfg,
		viewport: Viewport{Width: cfg.Width, Height: cfg.Height},
		clear:    cfg.ClearColor,
		color:    ColorWhite,
	}
	if cfg.ShowFPS {
		w.fps = newFPSOverlay()
	}
	return w
}

// SetViewport resizes the window and the logical screen.
func (w *Window) SetViewport(width, height int) {
	w.viewport = Viewport{Width: width, Height: height}
	ebiten.SetWindowSize(width, height)
}

func (w *Window) SetClearColor(c Color) {
	w.clear = c
}

// Clear fills the screen with the clear color and drops any unflushed
// geometry.
func (w *Window) Clear() {
	w.batchVerts = w.batchVerts[:0]
	w.batchInds = w.batchInds[:0]
	if w.screen != nil {
		w.screen.Fill(w.clear.toRGBA())
	}
}

// Present flushes the pending triangles and draws the FPS overlay. Ebitengine
// swaps buffers after Draw returns.
func (w *Window) Present() {
	w.flush()
	if w.fps != nil && w.screen != nil {
		w.fps.draw(w.screen)
	}
}

func (w *Window) SetColor(c Color) {
	w.color = c
}

func (w *Window) BeginTriangles() {
	w.open = true
	w.primStart = len(w.batchVerts)
}

// EmitVertex appends one screen-space vertex colored with the current color.
func (w *Window) EmitVertex(v mgl32.Vec3) {
	x, y := w.viewport.ToScreen(v)
	a := float32(w.color.A)
	w.batchVerts = append(w.batchVerts, ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(w.color.R) * a,
		ColorG: float32(w.color.G) * a,
		ColorB: float32(w.color.B) * a,
		ColorA: a,
	})
}

// EndPrimitive indexes the vertices emitted since BeginTriangles. Incomplete
// trailing triangles are dropped.
func (w *Window) EndPrimitive() {
	if !w.open {
		return
	}
	w.open = false
	n := len(w.batchVerts) - w.primStart
	n -= n % 3
	w.batchVerts = w.batchVerts[:w.primStart+n]
	for i := 0; i < n; i++ {
		w.batchInds = append(w.batchInds, uint32(w.primStart+i))
	}
	if len(w.batchVerts) >= maxBatchVertices {
		w.flush()
	}
}

// flush submits the accumulated triangles in a single draw call. Triangles
// are painted in submission order.
func (w *Window) flush() {
	if len(w.batchVerts) == 0 || w.screen == nil {
		w.batchVerts = w.batchVerts[:0]
		w.batchInds = w.batchInds[:0]
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.AntiAlias = true
	w.screen.DrawTriangles32(w.batchVerts, w.batchInds, ensureWhitePixel(), &triOp)
	w.batchVerts = w.batchVerts[:0]
	w.batchInds = w.batchInds[:0]
}

// PollEvents reports EventQuit once the user asks to close the window.
func (w *Window) PollEvents() ([]Event, error) {
	if ebiten.IsWindowBeingClosed() {
		return []Event{{Type: EventQuit}}, nil
	}
	return nil, nil
}

func (w *Window) IsKeyDown(k Key) bool {
	if int(k) >= numKeys {
		return false
	}
	return ebiten.IsKeyPressed(ebitenKeys[k])
}

// Screenshot writes the current screen contents to cfg.ScreenshotDir.
func (w *Window) Screenshot(label string) error {
	if w.screen == nil {
		return errors.New("screenshot: no frame drawn yet")
	}
	path, err := WriteScreenshot(w.cfg.ScreenshotDir, label, readScreen(w.screen))
	if err != nil {
		return err
	}
	Logger().Info("screenshot saved", slog.String("path", path))
	return nil
}

// readScreen copies the screen into a straight-alpha image.
func readScreen(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// Run opens the window and drives s until the window is closed. The scene
// must have been created with this window as its backend. A failure to open
// the window is returned wrapped in ErrSurface.
func (w *Window) Run(s *Scene) error {
	if s.backend != Backend(w) {
		panic("thicket: scene does not draw to this window")
	}
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetWindowSize(w.viewport.Width, w.viewport.Height)
	ebiten.SetWindowClosingHandled(true)
	if w.cfg.TPS > 0 {
		ebiten.SetTPS(w.cfg.TPS)
	}
	s.SetDebugMode(w.cfg.Debug)

	g := &game{scene: s, window: w}
	Logger().Info("opening window",
		slog.String("title", w.cfg.Title),
		slog.Int("width", w.viewport.Width),
		slog.Int("height", w.viewport.Height))
	if err := ebiten.RunGame(g); err != nil {
		if g.err != nil {
			return g.err
		}
		return fmt.Errorf("%w: %w", ErrSurface, err)
	}
	return g.err
}

// --- White pixel singleton (no sync.Once; Ebitengine drawing is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// game adapts a Scene to ebiten.Game. A whole loop iteration, from event
// polling to the clock tick, runs inside Draw so that the draw pass always
// sees the pan set by the previous frame's input.
type game struct {
	scene   *Scene
	window  *Window
	stopped bool
	err     error
}

func (g *game) Update() error {
	// Draw is not guaranteed to run while the window is hidden, so the
	// close request is also polled here.
	if !g.stopped && g.err == nil && ebiten.IsWindowBeingClosed() {
		g.step()
	}
	switch {
	case g.err != nil:
		return g.err
	case g.stopped:
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.stopped || g.err != nil {
		return
	}
	g.window.screen = screen
	g.step()
}

func (g *game) step() {
	running, err := g.scene.Step()
	if err != nil {
		g.err = err
		return
	}
	if !running {
		g.stopped = true
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.window.viewport.Width, g.window.viewport.Height
}
