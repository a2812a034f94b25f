package thicket

// numKeys is the number of keys the scene reacts to.
const numKeys = int(KeyHome) + 1

// injectedInput layers synthetic key state and quit requests over a real
// input source. Injected keys stay down until released, exactly like a held
// physical key, and are visible to the next HandleInput.
type injectedInput struct {
	base Input
	down [numKeys]bool
	quit bool
}

func newInjectedInput(base Input) *injectedInput {
	return &injectedInput{base: base}
}

// PollEvents returns the base source's events followed by an injected quit,
// if one is pending.
func (in *injectedInput) PollEvents() ([]Event, error) {
	var events []Event
	if in.base != nil {
		ev, err := in.base.PollEvents()
		if err != nil {
			return nil, err
		}
		events = ev
	}
	if in.quit {
		in.quit = false
		events = append(events, Event{Type: EventQuit})
	}
	return events, nil
}

// IsKeyDown reports whether k is held on the base source or injected.
func (in *injectedInput) IsKeyDown(k Key) bool {
	if int(k) < numKeys && in.down[k] {
		return true
	}
	return in.base != nil && in.base.IsKeyDown(k)
}

func (in *injectedInput) press(k Key) {
	if int(k) < numKeys {
		in.down[k] = true
	}
}

func (in *injectedInput) release(k Key) {
	if int(k) < numKeys {
		in.down[k] = false
	}
}

func (in *injectedInput) releaseAll() {
	in.down = [numKeys]bool{}
}

// InjectPress holds k down until InjectRelease is called. Takes effect on the
// next HandleInput.
func (s *Scene) InjectPress(k Key) {
	s.input.press(k)
}

// InjectRelease releases a key held by InjectPress.
func (s *Scene) InjectRelease(k Key) {
	s.input.release(k)
}

// InjectReleaseAll releases every injected key.
func (s *Scene) InjectReleaseAll() {
	s.input.releaseAll()
}

// InjectQuit queues a quit event. The loop stops at the start of the next
// iteration, before anything is drawn.
func (s *Scene) InjectQuit() {
	s.input.quit = true
}
