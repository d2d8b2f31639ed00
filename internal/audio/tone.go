package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// Tone is a short synthesized blip: a frequency sweep from From to To with a
// linear fade-out over the last Release of its Duration.
type Tone struct {
	From     float64 // Hz at the start
	To       float64 // Hz at the end
	Duration time.Duration
	Release  time.Duration
	Wave     Wave
	Gain     float64 // 0..1
}

// Samples returns the tone length at rate.
func (t Tone) Samples(rate beep.SampleRate) int {
	return rate.N(t.Duration)
}

// Streamer renders the tone at rate.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	total := t.Samples(rate)
	release := min(rate.N(t.Release), total)
	var phase float64
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			progress := float64(pos) / float64(total)
			freq := t.From + (t.To-t.From)*progress

			v := t.Gain * sample(t.Wave, phase)
			if left := total - pos; left < release {
				v *= float64(left) / float64(release)
			}
			samples[i][0] = v
			samples[i][1] = v

			phase += freq / float64(rate)
			phase -= math.Floor(phase)
			pos++
			n++
		}
		return n, true
	})
}

// sample evaluates one period of w at phase in [0, 1).
func sample(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
