package scene

import "github.com/hajimehoshi/ebiten/v2"

// Hooks are the lifecycle callbacks of a Host. Every hook is optional.
type Hooks struct {
	// Preload runs on the first enter only, to start loading assets
	Preload func()
	// Loading reports whether assets are still on their way. Create waits
	// until it returns false.
	Loading func() bool
	// Create builds the scene content, once per enter
	Create func()
	// Destroy tears the content down on exit
	Destroy func()
	Update  func(dt float64) (Scene, error)
	Draw    func(screen *ebiten.Image)
	// DrawLoading renders while Loading holds Create back
	DrawLoading func(screen *ebiten.Image)
}

// Host adapts Hooks to the Scene interface
type Host struct {
	name      string
	hooks     Hooks
	preloaded bool
	created   bool
}

// NewHost creates a scene driven by hooks
func NewHost(name string, hooks Hooks) *Host {
	return &Host{name: name, hooks: hooks}
}

// Name returns the scene name
func (h *Host) Name() string {
	return h.name
}

// Created reports whether Create ran since the last enter
func (h *Host) Created() bool {
	return h.created
}

// OnEnter preloads on first use and schedules Create
func (h *Host) OnEnter() {
	if !h.preloaded {
		h.preloaded = true
		if h.hooks.Preload != nil {
			h.hooks.Preload()
		}
	}
	h.created = false
}

// Update creates the scene once loading is over, then delegates
func (h *Host) Update(dt float64) (Scene, error) {
	if !h.created {
		if h.hooks.Loading != nil && h.hooks.Loading() {
			return nil, nil
		}
		h.created = true
		if h.hooks.Create != nil {
			h.hooks.Create()
		}
	}
	if h.hooks.Update == nil {
		return nil, nil
	}
	return h.hooks.Update(dt)
}

// Draw delegates to the Draw hook once created
func (h *Host) Draw(screen *ebiten.Image) {
	if !h.created {
		if h.hooks.DrawLoading != nil {
			h.hooks.DrawLoading(screen)
		}
		return
	}
	if h.hooks.Draw != nil {
		h.hooks.Draw(screen)
	}
}

// OnExit destroys the content if it was created
func (h *Host) OnExit() {
	if !h.created {
		return
	}
	h.created = false
	if h.hooks.Destroy != nil {
		h.hooks.Destroy()
	}
}
