package thicket

import (
	"log/slog"
	"time"
)

// frameStats holds per-frame timing and geometry counts.
// Only populated when Scene.debug is true.
type frameStats struct {
	drawTime    time.Duration
	presentTime time.Duration
	inputTime   time.Duration
	triangles   int
	composites  int
	maxDepth    int
	models      int
	pan         Pan
	delta       float64
	frame       uint64
}

// debugLog writes the stats of one frame at debug level.
func (s *Scene) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	Logger().Debug("frame",
		slog.Uint64("frame", stats.frame),
		slog.Duration("draw", stats.drawTime),
		slog.Duration("present", stats.presentTime),
		slog.Duration("input", stats.inputTime),
		slog.Int("models", stats.models),
		slog.Int("composites", stats.composites),
		slog.Int("triangles", stats.triangles),
		slog.Int("max_depth", stats.maxDepth),
		slog.Float64("delta", stats.delta),
		slog.Any("pan", stats.pan),
	)
}

// debugMaxDepth is the stack depth past which a debug warning is logged.
const debugMaxDepth = 32

// debugCheckDepth warns once per frame when the scene graph is unusually deep.
func debugCheckDepth(stats frameStats) {
	if stats.maxDepth > debugMaxDepth {
		Logger().Warn("scene graph depth exceeds threshold",
			slog.Int("depth", stats.maxDepth),
			slog.Int("threshold", debugMaxDepth))
	}
}
