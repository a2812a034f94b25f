package thicket

import "errors"

var (
	// ErrInvalidGeometry is returned when a shape is built from malformed
	// data: a triangle without exactly three vertices, a non-positive scale,
	// or a nil child.
	ErrInvalidGeometry = errors.New("thicket: invalid geometry")

	// ErrSurface is returned when the drawing surface cannot be created.
	ErrSurface = errors.New("thicket: surface unavailable")

	// ErrInput is returned when the input source fails to poll events.
	ErrInput = errors.New("thicket: input source failed")

	// ErrStopped is returned when a stopped scene is asked to run again.
	ErrStopped = errors.New("thicket: scene stopped")
)
