package thicket

import "github.com/go-gl/mathgl/mgl32"

// RenderContext carries the state of one draw pass: the transform stack, the
// pan offset fixed for the frame, and the rasterizer that receives geometry.
// It is passed explicitly to every Shape.Draw call.
type RenderContext struct {
	raster Rasterizer
	pan    Pan
	stack  *matrixStack

	triangles  int
	composites int
}

// NewRenderContext creates a context that submits geometry to r with the
// given pan offset. A nil rasterizer discards all geometry.
func NewRenderContext(r Rasterizer, pan Pan) *RenderContext {
	if r == nil {
		r = discardRasterizer{}
	}
	return &RenderContext{raster: r, pan: pan, stack: newMatrixStack()}
}

// begin prepares the context for a new frame.
func (rc *RenderContext) begin(pan Pan) {
	rc.pan = pan
	rc.stack.reset()
	rc.triangles = 0
	rc.composites = 0
}

// Pan returns the pan offset applied during this pass. It never changes while
// shapes are being drawn.
func (rc *RenderContext) Pan() Pan {
	return rc.pan
}

// Transform returns the composed transform at the top of the stack.
func (rc *RenderContext) Transform() mgl32.Mat4 {
	return rc.stack.top().transform
}

// Color returns the active paint color.
func (rc *RenderContext) Color() Color {
	return rc.stack.top().color
}

// Depth returns how many poses are currently pushed.
func (rc *RenderContext) Depth() int {
	return rc.stack.depth()
}

// WithPose saves the transform state, composes p onto it, calls fn, and
// restores the saved state. The restore runs on every exit path of fn,
// including a panic.
func (rc *RenderContext) WithPose(p Pose, fn func()) {
	rc.stack.push()
	defer rc.stack.pop()

	rc.stack.compose(p.Matrix(rc.pan))
	rc.stack.setColor(p.Color)
	fn()
}

// emitTriangles submits vertices, taken three at a time, in world space using
// the active color.
func (rc *RenderContext) emitTriangles(verts []mgl32.Vec3) {
	top := rc.stack.top()
	rc.raster.SetColor(top.color)
	rc.raster.BeginTriangles()
	for _, v := range verts {
		rc.raster.EmitVertex(transformPoint(top.transform, v))
	}
	rc.raster.EndPrimitive()
	rc.triangles += len(verts) / 3
}

// discardRasterizer drops all geometry.
type discardRasterizer struct{}

func (discardRasterizer) SetColor(Color)        {}
func (discardRasterizer) BeginTriangles()       {}
func (discardRasterizer) EmitVertex(mgl32.Vec3) {}
func (discardRasterizer) EndPrimitive()         {}
