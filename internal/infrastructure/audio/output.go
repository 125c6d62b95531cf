// Package audio loads and plays sound effects with beep.
//
// Loading is asynchronous: files are decoded on a goroutine and the results
// are handed back to the game loop through Service.Poll.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	// SampleRate is the rate every sound is resampled to
	SampleRate = beep.SampleRate(44100)
)

// Output plays streamers
type Output interface {
	Play(s beep.Streamer)
}

// SpeakerOutput mixes sounds into the system speaker
type SpeakerOutput struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeakerOutput initializes the speaker with a 100ms buffer
func NewSpeakerOutput() (*SpeakerOutput, error) {
	o := &SpeakerOutput{mixer: &beep.Mixer{}}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	speaker.Play(o.mixer)
	o.initialized = true
	return o, nil
}

// Play adds s to the mixer
func (o *SpeakerOutput) Play(s beep.Streamer) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return
	}
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

// Close stops every playing sound
func (o *SpeakerOutput) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return
	}
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
	o.initialized = false
}
