package thicket

import "testing"

// setupBenchScene creates a Scene holding the default village, drawing into
// a Recorder.
func setupBenchScene(b *testing.B) *Scene {
	b.Helper()
	s := NewScene(NewRecorder(), WithClock(stepClock(0)))
	if err := Populate(s, newTestRand(), DefaultTrees, DefaultHouses); err != nil {
		b.Fatal(err)
	}
	return s
}

// --- Draw Benchmarks ---

func BenchmarkDraw_Village(b *testing.B) {
	s := setupBenchScene(b)
	s.Draw()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Draw()
	}
}

func BenchmarkDraw_VillageDiscard(b *testing.B) {
	s := setupBenchScene(b)
	rc := NewRenderContext(nil, Pan{X: 0.5})
	models := s.Models()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rc.begin(Pan{X: 0.5})
		for _, m := range models {
			m.Draw(rc)
		}
	}
}

func BenchmarkStep_VillagePanning(b *testing.B) {
	s := setupBenchScene(b)
	s.InjectPress(KeyLeft)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Step(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPoseMatrix(b *testing.B) {
	p := NewPose().At(1, 2, 0).Rotated(-45).Scaled(0.2)
	pan := Pan{X: 0.3}
	for i := 0; i < b.N; i++ {
		_ = p.Matrix(pan)
	}
}
