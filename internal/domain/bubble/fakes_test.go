package bubble

// fakePresenter records calls instead of drawing anything
type fakePresenter struct {
	next      VisualHandle
	created   []VisualSpec
	destroyed []VisualHandle
	exits     map[VisualHandle]func()
	exitOrder []VisualHandle
	// sizeScale multiplies the requested size to simulate a display size
	sizeScale float64
	sizes     map[VisualHandle]float64
}

func newFakePresenter() *fakePresenter {
	return &fakePresenter{
		exits:     make(map[VisualHandle]func()),
		sizes:     make(map[VisualHandle]float64),
		sizeScale: 1,
	}
}

func (p *fakePresenter) CreateVisual(spec VisualSpec) VisualHandle {
	p.next++
	p.created = append(p.created, spec)
	p.sizes[p.next] = spec.Size * p.sizeScale
	return p.next
}

func (p *fakePresenter) VisualSize(h VisualHandle) (float64, float64) {
	return p.sizes[h], p.sizes[h]
}

func (p *fakePresenter) PlayExitAnimation(h VisualHandle, onComplete func()) {
	p.exits[h] = onComplete
	p.exitOrder = append(p.exitOrder, h)
}

func (p *fakePresenter) DestroyVisual(h VisualHandle) {
	p.destroyed = append(p.destroyed, h)
}

// finishExit simulates the end of the exit animation of h
func (p *fakePresenter) finishExit(h VisualHandle) {
	if fn, ok := p.exits[h]; ok {
		delete(p.exits, h)
		fn()
	}
}

// fakeTaps keeps one-shot listeners per visual
type fakeTaps struct {
	listeners map[VisualHandle]func()
}

func newFakeTaps() *fakeTaps {
	return &fakeTaps{listeners: make(map[VisualHandle]func())}
}

func (t *fakeTaps) OnTapOnce(h VisualHandle, fn func()) {
	t.listeners[h] = fn
}

// tap fires and drops the listener of h, returning whether one existed
func (t *fakeTaps) tap(h VisualHandle) bool {
	fn, ok := t.listeners[h]
	if !ok {
		return false
	}
	delete(t.listeners, h)
	fn()
	return true
}

type countingSound struct {
	plays int
}

func (s *countingSound) Play() {
	s.plays++
}
