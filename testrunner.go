package thicket

import (
	"encoding/json"
	"errors"
	"fmt"
)

// scriptOp is a parsed script action.
type scriptOp uint8

const (
	opPress scriptOp = iota
	opRelease
	opReleaseAll
	opWait
	opScreenshot
	opQuit
)

var scriptOps = map[string]scriptOp{
	"press":       opPress,
	"release":     opRelease,
	"release_all": opReleaseAll,
	"wait":        opWait,
	"screenshot":  opScreenshot,
	"quit":        opQuit,
}

// scriptStep is one entry of a JSON script.
type scriptStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`

	op  scriptOp
	key Key
}

// TestRunner replays a key script against a scene, one action per frame,
// so a run can be automated without a keyboard. Attach it with
// SetTestRunner.
//
// Script format:
//
//	{"steps": [
//	  {"action": "press", "key": "up"},
//	  {"action": "wait", "frames": 30},
//	  {"action": "release", "key": "up"},
//	  {"action": "screenshot", "label": "panned"},
//	  {"action": "quit"}
//	]}
//
// Keys are "up", "down", "left", "right" and "home". "release_all" lets go
// of every injected key.
type TestRunner struct {
	script []scriptStep
	next   int
	idle   int
	done   bool
}

// LoadTestScript parses and validates a JSON script.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var doc struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("test script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, errors.New("test script: empty")
	}
	for i := range doc.Steps {
		st := &doc.Steps[i]
		op, ok := scriptOps[st.Action]
		if !ok {
			return nil, fmt.Errorf("test script: step %d: unknown action %q", i, st.Action)
		}
		st.op = op
		if op == opPress || op == opRelease {
			if st.key, ok = ParseKey(st.Key); !ok {
				return nil, fmt.Errorf("test script: step %d: unknown key %q", i, st.Key)
			}
		}
	}
	return &TestRunner{script: doc.Steps}, nil
}

// SetTestRunner attaches runner to the scene. It advances at the start of
// every Step, before events are polled.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.runner = runner
}

// Done reports whether the whole script has been replayed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step performs the action due this frame.
func (r *TestRunner) step(s *Scene) {
	switch {
	case r.done:
		return
	case r.idle > 0:
		r.idle--
		return
	case r.next >= len(r.script):
		r.done = true
		return
	}

	st := r.script[r.next]
	r.next++
	switch st.op {
	case opPress:
		s.InjectPress(st.key)
	case opRelease:
		s.InjectRelease(st.key)
	case opReleaseAll:
		s.InjectReleaseAll()
	case opScreenshot:
		s.Screenshot(st.Label)
	case opQuit:
		s.InjectQuit()
	case opWait:
		// The current frame is the first one waited.
		r.idle = max(st.Frames-1, 0)
	}
	r.done = r.next >= len(r.script) && r.idle == 0
}
