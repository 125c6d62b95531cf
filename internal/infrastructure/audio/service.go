package audio

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
	"github.com/younwookim/bubblepop/internal/log"
)

// Sound is a decoded sound ready to be played any number of times.
// A nil *Sound is valid and plays nothing.
type Sound struct {
	name   string
	buffer *beep.Buffer
	out    Output
	volume float64
}

// Play starts the sound from the beginning
func (s *Sound) Play() {
	if s == nil || s.buffer == nil || s.out == nil {
		return
	}
	st := s.buffer.Streamer(0, s.buffer.Len())
	if s.volume == 0 {
		s.out.Play(st)
		return
	}
	s.out.Play(&effects.Volume{Streamer: st, Base: 2, Volume: s.volume})
}

// Name returns the name the sound was loaded under
func (s *Sound) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Samples returns the length of the sound in samples
func (s *Sound) Samples() int {
	if s == nil || s.buffer == nil {
		return 0
	}
	return s.buffer.Len()
}

type loadResult struct {
	name  string
	sound *Sound
	err   error
	done  func(*Sound, error)
}

// Service decodes sounds in the background and caches them by name
type Service struct {
	fsys   fs.FS
	out    Output
	volume float64
	logger *log.Logger

	mu      sync.Mutex
	ready   []loadResult
	pending int
	wg      sync.WaitGroup

	sounds map[string]*Sound
}

// NewService creates a service reading assets from fsys.
// A nil out decodes sounds but never plays them.
func NewService(fsys fs.FS, out Output, volume float64, logger *log.Logger) *Service {
	return &Service{
		fsys:   fsys,
		out:    out,
		volume: volume,
		logger: logger,
		sounds: make(map[string]*Sound),
	}
}

// Load decodes the sound at p under name. done runs on the goroutine that
// calls Poll once decoding finishes. Sounds already loaded are reused.
func (s *Service) Load(name, p string, done func(*Sound, error)) {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()

	if snd, ok := s.sounds[name]; ok {
		s.finish(loadResult{name: name, sound: snd, done: done})
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		buf, err := s.decode(p)
		if err != nil {
			s.finish(loadResult{name: name, err: fmt.Errorf("failed to load sound %s: %w", name, err), done: done})
			return
		}
		s.finish(loadResult{
			name:  name,
			sound: &Sound{name: name, buffer: buf, out: s.out, volume: s.volume},
			done:  done,
		})
	}()
}

func (s *Service) finish(r loadResult) {
	s.mu.Lock()
	s.ready = append(s.ready, r)
	s.mu.Unlock()
}

// Poll delivers finished loads and returns how many were delivered
func (s *Service) Poll() int {
	s.mu.Lock()
	ready := s.ready
	s.ready = nil
	s.pending -= len(ready)
	s.mu.Unlock()

	for _, r := range ready {
		if r.err != nil {
			s.logger.Warnf("%v", r.err)
		} else {
			s.sounds[r.name] = r.sound
			s.logger.Debugf("sound %s loaded (%d samples)", r.name, r.sound.Samples())
		}
		if r.done != nil {
			r.done(r.sound, r.err)
		}
	}
	return len(ready)
}

// Pending returns the number of loads not yet delivered by Poll
func (s *Service) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Wait blocks until every started decode has finished.
// Results still need a Poll to be delivered.
func (s *Service) Wait() {
	s.wg.Wait()
}

// Get returns a sound delivered by an earlier Poll
func (s *Service) Get(name string) (*Sound, bool) {
	snd, ok := s.sounds[name]
	return snd, ok
}

func (s *Service) decode(p string) (*beep.Buffer, error) {
	if strings.HasPrefix(p, SynthPrefix) {
		return synthesize(strings.TrimPrefix(p, SynthPrefix))
	}
	if s.fsys == nil {
		return nil, fmt.Errorf("no asset filesystem for %s", p)
	}

	f, err := s.fsys.Open(p)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(path.Ext(p)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("unsupported audio format %q", path.Ext(p))
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	defer func() { _ = streamer.Close() }()

	return bufferAt(streamer, format), nil
}

// bufferAt copies s into a buffer at SampleRate
func bufferAt(s beep.Streamer, format beep.Format) *beep.Buffer {
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, s)
		format.SampleRate = SampleRate
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf
}
