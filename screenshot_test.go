package thicket

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-pan", "after-pan"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s, _ := newTestScene()
	s.Screenshot("a")
	s.Screenshot("b")
	s.Screenshot("c")
	if len(s.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(s.screenshotQueue))
	}
	if s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" || s.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", s.screenshotQueue)
	}
}

// shooterBackend records screenshot labels along with the frame they saw.
type shooterBackend struct {
	*fakeBackend
	labels    []string
	presented []int
}

func (b *shooterBackend) Screenshot(label string) error {
	b.labels = append(b.labels, label)
	b.presented = append(b.presented, b.Presents)
	return nil
}

func TestScreenshotFlushedAfterPresent(t *testing.T) {
	b := &shooterBackend{fakeBackend: newFakeBackend()}
	s := NewScene(b)
	s.Screenshot("first")
	s.Draw()
	if len(b.labels) != 1 || b.labels[0] != "first" {
		t.Fatalf("labels = %v, want [first]", b.labels)
	}
	if b.presented[0] != 1 {
		t.Errorf("screenshot taken before present (presents = %d)", b.presented[0])
	}
	if len(s.screenshotQueue) != 0 {
		t.Errorf("queue not drained: %v", s.screenshotQueue)
	}
}

func TestScreenshotUnsupportedBackend(t *testing.T) {
	s, _ := newTestScene()
	s.Screenshot("dropped")
	s.Draw()
	if len(s.screenshotQueue) != 0 {
		t.Errorf("queue = %v, want drained", s.screenshotQueue)
	}
}

func TestWriteScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})

	path, err := WriteScreenshot(dir, "my shot", img)
	if err != nil {
		t.Fatalf("WriteScreenshot: %v", err)
	}
	if filepath.Dir(path) != dir || !strings.HasSuffix(path, "_my_shot.png") {
		t.Errorf("path = %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	r, _, _, a := decoded.At(1, 1).RGBA()
	if r != 0xffff || a != 0xffff {
		t.Errorf("pixel (1,1) = %v, want red", decoded.At(1, 1))
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	if DefaultScreenshotDir != "screenshots" {
		t.Errorf("DefaultScreenshotDir = %q, want %q", DefaultScreenshotDir, "screenshots")
	}
}
