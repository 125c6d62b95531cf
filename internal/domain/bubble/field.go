package bubble

import (
	"image/color"
	"math/rand"

	"github.com/kamstrup/intmap"
)

// WobbleRange bounds the random idle animation timings, in milliseconds
type WobbleRange struct {
	MinDuration int
	MaxDuration int
	MinDelay    int
	MaxDelay    int
}

// Options configures a Field
type Options struct {
	// Width and Height of the display area the grid is centered in
	Width   float64
	Height  float64
	Palette []color.RGBA
	Wobble  WobbleRange
	Rand    *rand.Rand
}

// Field owns the bubbles of one round
type Field struct {
	presenter Presenter
	taps      TapSource
	colors    *ColorFactory
	rng       *rand.Rand
	opts      Options

	grid        Grid
	initialized bool
	bubbles     []*Bubble
	live        *intmap.Map[ID, *Bubble]
	popping     *intmap.Map[ID, *Bubble]
	nextID      ID

	probeWidth  float64
	probeHeight float64

	complete  bool
	listeners []func()
	popSound  Sound
}

// NewField creates an empty field. Initialize populates it.
func NewField(presenter Presenter, taps TapSource, opts Options) *Field {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	palette := opts.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	return &Field{
		presenter: presenter,
		taps:      taps,
		colors:    NewColorFactory(palette, rng),
		rng:       rng,
		opts:      opts,
		live:      intmap.New[ID, *Bubble](64),
		popping:   intmap.New[ID, *Bubble](16),
		nextID:    1,
	}
}

// Initialize creates one bubble per grid cell and returns them in row-major
// order. A grid with no cells leaves the field complete from the start.
// Only the first call has an effect; later calls return the existing bubbles.
func (f *Field) Initialize(grid Grid) []Bubble {
	if f.initialized {
		return f.Bubbles()
	}
	f.initialized = true
	f.grid = grid

	f.measure()

	n := grid.Cells()
	f.bubbles = make([]*Bubble, 0, n)
	for i := 0; i < n; i++ {
		b := f.spawn(grid.Align(i, f.opts.Width, f.opts.Height))
		f.bubbles = append(f.bubbles, b)
		f.live.Put(b.ID, b)
	}

	if f.live.Len() == 0 {
		f.complete = true
	}

	for _, b := range f.bubbles {
		id := b.ID
		f.taps.OnTapOnce(b.Visual, func() {
			f.Pop(id)
		})
	}

	return f.Bubbles()
}

// measure creates a throwaway visual to learn the display size of a bubble.
// The probe never joins the live set.
func (f *Field) measure() {
	h := f.presenter.CreateVisual(VisualSpec{
		Color: color.RGBA{255, 255, 255, 255},
		Size:  f.grid.CellSize,
	})
	f.probeWidth, f.probeHeight = f.presenter.VisualSize(h)
	f.presenter.DestroyVisual(h)
}

func (f *Field) spawn(center Point) *Bubble {
	w := f.opts.Wobble
	b := &Bubble{
		ID:     f.nextID,
		Center: center,
		Size:   f.grid.CellSize,
		Color:  f.colors.Next(),
		Phase:  PhaseAlive,
		Wobble: Wobble{
			DurationX: RandomIntInclusive(f.rng, w.MinDuration, w.MaxDuration),
			DelayX:    RandomIntInclusive(f.rng, w.MinDelay, w.MaxDelay),
			DurationY: RandomIntInclusive(f.rng, w.MinDuration, w.MaxDuration),
			DelayY:    RandomIntInclusive(f.rng, w.MinDelay, w.MaxDelay),
		},
	}
	f.nextID++

	b.Visual = f.presenter.CreateVisual(VisualSpec{
		Color:  b.Color,
		Center: b.Center,
		Size:   b.Size,
		Wobble: b.Wobble,
	})
	return b
}

// Pop removes a live bubble and starts its exit animation.
// Popping an unknown or already popped bubble is a no-op and returns false.
func (f *Field) Pop(id ID) (PopDirective, bool) {
	b, ok := f.live.Get(id)
	if !ok {
		return PopDirective{}, false
	}

	f.live.Del(id)
	b.Phase = PhasePopping
	f.popping.Put(id, b)

	if f.popSound != nil {
		f.popSound.Play()
	}

	directive := PopDirective{ID: id, Visual: b.Visual}
	f.presenter.PlayExitAnimation(b.Visual, func() {
		f.Retire(id)
	})

	if f.live.Len() == 0 && !f.complete {
		f.complete = true
		for _, fn := range f.listeners {
			fn()
		}
	}

	return directive, true
}

// Retire finishes a pop once the exit animation is over and destroys the
// visual. It returns false if the bubble was not popping.
func (f *Field) Retire(id ID) bool {
	b, ok := f.popping.Get(id)
	if !ok {
		return false
	}
	f.popping.Del(id)
	b.Phase = PhaseRemoved
	f.presenter.DestroyVisual(b.Visual)
	return true
}

// OnComplete subscribes fn to the completion signal. Listeners run once,
// on the pop that empties the field.
func (f *Field) OnComplete(fn func()) {
	f.listeners = append(f.listeners, fn)
}

// SetPopSound sets the sound played on every pop. A nil sound disables it.
func (f *Field) SetPopSound(s Sound) {
	f.popSound = s
}

// Complete reports whether no bubble is left to pop
func (f *Field) Complete() bool {
	return f.complete
}

// LiveCount returns the number of bubbles still poppable
func (f *Field) LiveCount() int {
	return f.live.Len()
}

// PoppingCount returns the number of bubbles whose exit animation is running
func (f *Field) PoppingCount() int {
	return f.popping.Len()
}

// Live returns the poppable bubbles in creation order
func (f *Field) Live() []Bubble {
	out := make([]Bubble, 0, f.live.Len())
	for _, b := range f.bubbles {
		if f.live.Has(b.ID) {
			out = append(out, *b)
		}
	}
	return out
}

// Bubbles returns every bubble of the field in creation order
func (f *Field) Bubbles() []Bubble {
	out := make([]Bubble, len(f.bubbles))
	for i, b := range f.bubbles {
		out[i] = *b
	}
	return out
}

// Bubble returns the bubble with the given id
func (f *Field) Bubble(id ID) (Bubble, bool) {
	if id == 0 || int(id) > len(f.bubbles) {
		return Bubble{}, false
	}
	return *f.bubbles[id-1], true
}

// Grid returns the layout used by Initialize
func (f *Field) Grid() Grid {
	return f.grid
}

// ProbeSize returns the display size measured during Initialize
func (f *Field) ProbeSize() (float64, float64) {
	return f.probeWidth, f.probeHeight
}
