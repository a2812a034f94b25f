package thicket

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DefaultScreenshotDir is where backends write screenshots unless configured
// otherwise.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled capture of the next presented frame. The
// backend must implement Screenshotter; otherwise the request is logged and
// dropped.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots hands every queued label to the backend. Called right
// after Present.
func (s *Scene) flushScreenshots() {
	if len(s.screenshotQueue) == 0 {
		return
	}
	shooter, ok := s.backend.(Screenshotter)
	if !ok {
		Logger().Warn("screenshot: backend cannot capture frames",
			slog.Int("dropped", len(s.screenshotQueue)))
		s.screenshotQueue = s.screenshotQueue[:0]
		return
	}
	for _, label := range s.screenshotQueue {
		if err := shooter.Screenshot(label); err != nil {
			Logger().Warn("screenshot failed", slog.String("label", label), slog.Any("err", err))
		}
	}
	s.screenshotQueue = s.screenshotQueue[:0]
}

// WriteScreenshot encodes img as a PNG named <timestamp>_<label>.png inside
// dir, creating dir if needed, and returns the file path.
func WriteScreenshot(dir, label string, img image.Image) (string, error) {
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: mkdir %s: %w", dir, err)
	}
	name := time.Now().Format("20060102_150405") + "_" + sanitizeLabel(label) + ".png"
	path := filepath.Join(dir, name)
	if err := writePNG(path, img); err != nil {
		return "", fmt.Errorf("screenshot: write %s: %w", path, err)
	}
	return path, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

// sanitizeLabel keeps letters, digits, '-' and '.' and turns everything else
// into '_'. An empty label becomes "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			return r
		}
		return '_'
	}, label)
}
