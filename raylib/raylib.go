// Package raylib provides a thicket backend on raylib. Triangles go through
// rlgl in immediate mode, one Begin/End pair per primitive, so raylib's
// render batch keeps submission order.
//
// Usage:
//
//	cfg := thicket.DefaultRunConfig()
//	w := raylib.NewWindow(cfg)
//	s := thicket.NewScene(w, append(cfg.SceneOptions(), thicket.WithClock(w.Clock()))...)
//	// add shapes
//	if err := w.Run(s); err != nil {
//		log.Fatal(err)
//	}
package raylib

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/phanxgames/thicket"
)

// defaultFPS is the frame cap used when the config leaves TPS at zero.
const defaultFPS = 60

var raylibKeys = [...]int32{
	thicket.KeyUp:    rl.KeyUp,
	thicket.KeyDown:  rl.KeyDown,
	thicket.KeyLeft:  rl.KeyLeft,
	thicket.KeyRight: rl.KeyRight,
	thicket.KeyHome:  rl.KeyHome,
}

// Window is a thicket.Backend and thicket.Screenshotter backed by a raylib
// window. All methods must be called from the goroutine that called Open.
type Window struct {
	cfg      thicket.RunConfig
	viewport thicket.Viewport
	clear    color.RGBA
	color    color.RGBA
	opened   bool
}

// NewWindow creates the raylib backend from cfg. The window opens in Open or
// Run.
func NewWindow(cfg thicket.RunConfig) *Window {
	return &Window{
		cfg:      cfg,
		viewport: thicket.Viewport{Width: cfg.Width, Height: cfg.Height},
		clear:    straight(cfg.ClearColor),
		color:    straight(thicket.ColorWhite),
	}
}

// Open creates the window and GL context. A window that fails to open is
// reported as thicket.ErrSurface.
func (w *Window) Open() error {
	if w.opened {
		return nil
	}
	rl.SetTraceLogCallback(traceToSlog)
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.viewport.Width), int32(w.viewport.Height), w.cfg.Title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("%w: raylib window %dx%d did not open", thicket.ErrSurface, w.viewport.Width, w.viewport.Height)
	}
	w.opened = true

	fps := w.cfg.TPS
	if fps <= 0 {
		fps = defaultFPS
	}
	rl.SetTargetFPS(int32(fps))
	rl.DisableBackfaceCulling()
	thicket.Logger().Info("raylib window opened",
		slog.String("title", w.cfg.Title),
		slog.Int("width", w.viewport.Width),
		slog.Int("height", w.viewport.Height))
	return nil
}

// Close destroys the window if it is open.
func (w *Window) Close() {
	if !w.opened {
		return
	}
	w.opened = false
	rl.CloseWindow()
}

// Run opens the window, runs s until the window is closed and closes the
// window again.
func (w *Window) Run(s *thicket.Scene) error {
	if err := w.Open(); err != nil {
		return err
	}
	defer w.Close()
	s.SetDebugMode(w.cfg.Debug)
	return s.Run()
}

// Clock returns a thicket.Clock that reports raylib's measured frame time.
func (w *Window) Clock() thicket.Clock {
	return frameTimeClock{}
}

func (w *Window) SetViewport(width, height int) {
	w.viewport = thicket.Viewport{Width: width, Height: height}
	if w.opened {
		rl.SetWindowSize(width, height)
	}
}

func (w *Window) SetClearColor(c thicket.Color) {
	w.clear = straight(c)
}

// Clear starts a raylib frame and fills it with the clear color.
func (w *Window) Clear() {
	rl.BeginDrawing()
	rl.ClearBackground(w.clear)
}

// Present ends the raylib frame and swaps buffers.
func (w *Window) Present() {
	rl.EndDrawing()
}

func (w *Window) SetColor(c thicket.Color) {
	w.color = straight(c)
}

func (w *Window) BeginTriangles() {
	rl.Begin(rl.Triangles)
}

// EmitVertex submits one vertex in screen pixels. raylib's default 2D
// projection puts the origin at the top-left corner.
func (w *Window) EmitVertex(v mgl32.Vec3) {
	x, y := w.viewport.ToScreen(v)
	rl.Color4ub(w.color.R, w.color.G, w.color.B, w.color.A)
	rl.Vertex2f(x, y)
}

func (w *Window) EndPrimitive() {
	rl.End()
}

// PollEvents reports EventQuit when the close button or the exit key was
// pressed.
func (w *Window) PollEvents() ([]thicket.Event, error) {
	if !w.opened {
		return nil, errors.New("raylib window is not open")
	}
	if rl.WindowShouldClose() {
		return []thicket.Event{{Type: thicket.EventQuit}}, nil
	}
	return nil, nil
}

func (w *Window) IsKeyDown(k thicket.Key) bool {
	if int(k) >= len(raylibKeys) {
		return false
	}
	return rl.IsKeyDown(raylibKeys[k])
}

// Screenshot reads back the last presented frame and writes it under the
// configured screenshot directory.
func (w *Window) Screenshot(label string) error {
	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)
	path, err := thicket.WriteScreenshot(w.cfg.ScreenshotDir, label, img.ToImage())
	if err != nil {
		return err
	}
	thicket.Logger().Info("screenshot saved", slog.String("path", path))
	return nil
}

// frameTimeClock reports the duration of the last raylib frame.
type frameTimeClock struct{}

func (frameTimeClock) Tick() time.Duration {
	return time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
}

// straight converts to an 8-bit color without premultiplying; rlgl blends
// with straight alpha.
func straight(c thicket.Color) color.RGBA {
	return color.RGBA{
		R: unit8(c.R),
		G: unit8(c.G),
		B: unit8(c.B),
		A: unit8(c.A),
	}
}

func unit8(v float64) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}

// traceToSlog forwards raylib's trace log to the thicket logger.
func traceToSlog(level int, msg string) {
	l := thicket.Logger()
	switch rl.TraceLogLevel(level) {
	case rl.LogTrace, rl.LogDebug:
		l.Debug(msg, slog.String("source", "raylib"))
	case rl.LogInfo:
		l.Info(msg, slog.String("source", "raylib"))
	case rl.LogWarning:
		l.Warn(msg, slog.String("source", "raylib"))
	default:
		l.Error(msg, slog.String("source", "raylib"))
	}
}
