package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SynthPrefix marks a sound path as a generated sound
const SynthPrefix = "synth:"

// popGenerator is a short falling chirp
type popGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	phase   float64
}

func newPopGenerator(sr beep.SampleRate) *popGenerator {
	return &popGenerator{sr: sr, samples: sr.N(90 * time.Millisecond)}
}

func (g *popGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.samples)

		// 900Hz falling to 250Hz with a fast exponential decay
		freq := 900 - 650*progress
		amp := 0.35 * math.Exp(-5*progress)
		val := amp * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = val
		samples[i][1] = val

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *popGenerator) Err() error { return nil }

// sparkleGenerator is a rising major arpeggio with a soft tail
type sparkleGenerator struct {
	sr      beep.SampleRate
	pos     int
	noteLen int
	notes   []float64
	phase   float64
}

func newSparkleGenerator(sr beep.SampleRate) *sparkleGenerator {
	return &sparkleGenerator{
		sr:      sr,
		noteLen: sr.N(110 * time.Millisecond),
		notes:   []float64{1046.50, 1318.51, 1567.98, 2093.00, 2637.02},
	}
}

func (g *sparkleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.noteLen * len(g.notes)
	for i := range samples {
		if g.pos >= total {
			return i, i > 0
		}
		note := g.pos / g.noteLen
		within := float64(g.pos%g.noteLen) / float64(g.noteLen)

		amp := 0.25 * math.Exp(-3*within) * (1 - 0.1*float64(note))
		val := amp * (math.Sin(2*math.Pi*g.phase) + 0.3*math.Sin(4*math.Pi*g.phase))

		samples[i][0] = val
		samples[i][1] = val

		g.phase += g.notes[note] / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *sparkleGenerator) Err() error { return nil }

// synthesize renders a named generated sound into a buffer
func synthesize(name string) (*beep.Buffer, error) {
	var s beep.Streamer
	switch name {
	case "pop":
		s = newPopGenerator(SampleRate)
	case "sparkle":
		s = newSparkleGenerator(SampleRate)
	default:
		return nil, fmt.Errorf("unknown synth sound %q", name)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}
