package thicket

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in frames, the overlay text is redrawn.
const fpsRefresh = 30

// fpsOverlay displays the current FPS and TPS in the top-left corner of the
// window. The text is rendered into its own image and refreshed every
// fpsRefresh frames.
type fpsOverlay struct {
	img    *ebiten.Image
	frames int
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{}
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		o.img = ebiten.NewImage(100, 32)
	}
	if o.frames%fpsRefresh == 0 {
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	o.frames++
	screen.DrawImage(o.img, nil)
}
