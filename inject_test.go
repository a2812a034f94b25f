package thicket

import (
	"errors"
	"testing"
)

func TestInjectPressRelease(t *testing.T) {
	s, _ := newTestScene()
	s.InjectPress(KeyDown)
	if !s.input.IsKeyDown(KeyDown) {
		t.Error("injected key should be down")
	}
	if s.input.IsKeyDown(KeyUp) {
		t.Error("other keys should stay up")
	}
	s.InjectRelease(KeyDown)
	if s.input.IsKeyDown(KeyDown) {
		t.Error("released key should be up")
	}
}

func TestInjectReleaseAll(t *testing.T) {
	s, _ := newTestScene()
	s.InjectPress(KeyLeft)
	s.InjectPress(KeyHome)
	s.InjectReleaseAll()
	for k := range Key(numKeys) {
		if s.input.IsKeyDown(k) {
			t.Errorf("%v still down after ReleaseAll", k)
		}
	}
}

func TestInjectCombinesWithBackend(t *testing.T) {
	s, b := newTestScene()
	b.keys[KeyUp] = true
	s.InjectPress(KeyRight)
	if !s.input.IsKeyDown(KeyUp) || !s.input.IsKeyDown(KeyRight) {
		t.Error("expected both physical and injected keys down")
	}
}

func TestInjectUnknownKeyIgnored(t *testing.T) {
	s, _ := newTestScene()
	s.InjectPress(Key(200))
	if s.input.IsKeyDown(Key(200)) {
		t.Error("out of range key should never be down")
	}
}

func TestInjectQuitOnce(t *testing.T) {
	s, b := newTestScene()
	b.events = []Event{{Type: EventNone}}
	s.InjectQuit()

	events, err := s.input.PollEvents()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 || events[0].Type != EventNone || events[1].Type != EventQuit {
		t.Errorf("events = %+v, want backend event then quit", events)
	}
	events, _ = s.input.PollEvents()
	if len(events) != 0 {
		t.Errorf("second poll = %+v, want none", events)
	}
}

func TestInjectPollErrorKeepsQuit(t *testing.T) {
	s, b := newTestScene()
	b.pollErr = errors.New("boom")
	s.InjectQuit()
	if _, err := s.input.PollEvents(); err == nil {
		t.Fatal("expected poll error")
	}
	b.pollErr = nil
	events, _ := s.input.PollEvents()
	if len(events) != 1 || events[0].Type != EventQuit {
		t.Errorf("events = %+v, quit should survive a failed poll", events)
	}
}

func TestInjectMovesPan(t *testing.T) {
	s, _ := newTestScene(WithPanSpeed(1))
	s.InjectPress(KeyDown)
	mustStep(t, s)
	if s.Pan().Y <= 0 {
		t.Errorf("pan = %+v, want positive Y", s.Pan())
	}
}
