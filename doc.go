// Package thicket is a small retained-mode 2D scene graph of colored
// triangles.
//
// A scene holds an ordered list of shapes. A shape is either a [Triangle],
// the leaf, or a [Composite] grouping other shapes under one [Pose]. Every
// frame the scene clears the surface, walks the shapes in insertion order
// through a [RenderContext] that keeps a transform stack, and emits one
// world-space vertex stream to the backend. Arrow keys move a pan offset
// that is added to every pose at draw time.
//
// # Quick start
//
// The simplest way to get started is [Window], an [Ebitengine] backend that
// creates the window and game loop for you:
//
//	cfg := thicket.DefaultRunConfig()
//	window := thicket.NewWindow(cfg)
//	scene := thicket.NewScene(window, cfg.SceneOptions()...)
//	tree, _ := thicket.NewTree(thicket.NewPose().Scaled(0.2))
//	scene.Add(tree)
//	window.Run(scene)
//
// Any type implementing [Backend] can stand in for the window. The canvas
// package rasterizes headlessly with [gg], the raylib module draws through
// raylib, and [Recorder] keeps the vertex stream in memory for tests.
//
// # Poses and transforms
//
// A pose places a shape relative to its parent. Its matrix is
//
//	T(position + pan) · Rz(orientation) · S(scale)
//
// and composites multiply their matrix onto the stack before drawing their
// children, so child geometry ends up in the parent's frame. Orientation is
// in degrees. Colors are not inherited: each triangle paints with its own
// pose color.
//
//	house, _ := thicket.NewHouse(thicket.NewPose().At(1, 0, 0).Scaled(0.2))
//
// # Automation
//
// [Scene.InjectPress], [Scene.InjectQuit] and [LoadTestScript] drive a scene
// without a keyboard. Screenshots requested with [Scene.Screenshot] are
// written by backends that implement [Screenshotter].
//
// Scene events (panning and shutdown) can be forwarded to a [Donburi] world
// with the adapter in thicket/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
// [Donburi]: https://github.com/yohamta/donburi
package thicket
