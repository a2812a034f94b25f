package thicket

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pan is the camera-like offset added to the position of every shape at draw
// time.
type Pan struct {
	X, Y, Z float32
}

// Vec returns the offset as a vector.
func (p Pan) Vec() mgl32.Vec3 {
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

// recenterAnim holds the tweens easing each pan axis back to zero.
type recenterAnim struct {
	tweens [3]*gween.Tween
	done   [3]bool
}

// panController owns the pan offset and updates it from keyboard state.
type panController struct {
	pan   Pan
	speed float32

	recenterDuration float32
	recenterEase     ease.TweenFunc
	recenter         *recenterAnim
}

func newPanController(speed, recenterDuration float32) *panController {
	return &panController{
		speed:            speed,
		recenterDuration: recenterDuration,
		recenterEase:     ease.OutCubic,
	}
}

// update applies one frame of input. Each held direction key moves the pan by
// speed*dt; opposite keys cancel and perpendicular keys combine. Pressing
// KeyHome while no direction key is held eases the pan back to the origin.
func (c *panController) update(in Input, dt float64) {
	step := float32(float64(c.speed) * dt)
	moved := false
	if in.IsKeyDown(KeyUp) {
		c.pan.Y -= step
		moved = true
	}
	if in.IsKeyDown(KeyDown) {
		c.pan.Y += step
		moved = true
	}
	if in.IsKeyDown(KeyLeft) {
		c.pan.X += step
		moved = true
	}
	if in.IsKeyDown(KeyRight) {
		c.pan.X -= step
		moved = true
	}
	if moved {
		c.recenter = nil
		return
	}

	if c.recenter == nil && in.IsKeyDown(KeyHome) && c.pan != (Pan{}) {
		c.startRecenter()
	}
	if c.recenter != nil {
		c.advanceRecenter(float32(dt))
	}
}

func (c *panController) startRecenter() {
	if c.recenterDuration <= 0 {
		c.pan = Pan{}
		return
	}
	from := [3]float32{c.pan.X, c.pan.Y, c.pan.Z}
	anim := &recenterAnim{}
	for i, v := range from {
		anim.tweens[i] = gween.New(v, 0, c.recenterDuration, c.recenterEase)
	}
	c.recenter = anim
}

func (c *panController) advanceRecenter(dt float32) {
	axes := [3]*float32{&c.pan.X, &c.pan.Y, &c.pan.Z}
	anim := c.recenter
	for i, tw := range anim.tweens {
		if anim.done[i] {
			continue
		}
		val, done := tw.Update(dt)
		*axes[i] = val
		anim.done[i] = done
	}
	if anim.done[0] && anim.done[1] && anim.done[2] {
		c.recenter = nil
	}
}

// recentering reports whether a recentre animation is in progress.
func (c *panController) recentering() bool {
	return c.recenter != nil
}
