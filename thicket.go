package thicket

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R float64 `toml:"r" yaml:"r" json:"r"`
	G float64 `toml:"g" yaml:"g" json:"g"`
	B float64 `toml:"b" yaml:"b" json:"b"`
	A float64 `toml:"a" yaml:"a" json:"a"`
}

// ColorWhite is the default pose color.
var ColorWhite = Color{1, 1, 1, 1}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// inRange reports whether every channel is within [0, 1]. NaN is out of
// range.
func (c Color) inRange() bool {
	for _, v := range [4]float64{c.R, c.G, c.B, c.A} {
		if !(v >= 0 && v <= 1) {
			return false
		}
	}
	return true
}

// toRGBA converts to a premultiplied 8-bit color. Channels are clamped to
// [0, 1], which only matters for clear colors since poses reject others.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Key identifies a keyboard key the scene reacts to.
type Key uint8

const (
	KeyUp    Key = iota // pan the view up
	KeyDown             // pan the view down
	KeyLeft             // pan the view left
	KeyRight            // pan the view right
	KeyHome             // ease the pan back to the origin
)

var keyNames = [...]string{
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyHome:  "home",
}

// String returns the lower-case key name used in test scripts.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey looks up a key by its String name.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), true
		}
	}
	return 0, false
}

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventNone EventType = iota // placeholder for events the scene ignores
	EventQuit                  // the window was asked to close
)

// Event is a single polled input event.
type Event struct {
	Type EventType
}

// Viewport is the pixel size of the drawing surface. Geometry is expressed in
// normalized device coordinates: the square [-1, 1] on both axes with Y up.
type Viewport struct {
	Width, Height int
}

// ToScreen maps a normalized device position to pixel coordinates with the
// origin at the top-left and Y increasing downward.
func (vp Viewport) ToScreen(v mgl32.Vec3) (x, y float32) {
	x = (v.X() + 1) * 0.5 * float32(vp.Width)
	y = (1 - v.Y()) * 0.5 * float32(vp.Height)
	return x, y
}
