// Package audio plays short synthesized cues for match events.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/space-shooter/internal/core"
)

const sampleRate = beep.SampleRate(44100)

var (
	fireTone = Tone{From: 880, To: 660, Duration: 60 * time.Millisecond, Release: 40 * time.Millisecond, Wave: WaveSquare, Gain: 0.25}
	hitTone  = Tone{From: 220, To: 90, Duration: 140 * time.Millisecond, Release: 100 * time.Millisecond, Wave: WaveTriangle, Gain: 0.5}
	overTone = Tone{From: 330, To: 55, Duration: 700 * time.Millisecond, Release: 400 * time.Millisecond, Wave: WaveSine, Gain: 0.6}
)

// ToneFor returns the cue played for an event kind.
func ToneFor(kind core.EventKind) (Tone, bool) {
	switch kind {
	case core.EventShotFired:
		return fireTone, true
	case core.EventHostileDestroyed:
		return hitTone, true
	case core.EventMatchEnded:
		return overTone, true
	}
	return Tone{}, false
}

// Cues is a core.Listener that mixes a tone per event onto the speaker.
// Without a working audio device it stays silent.
type Cues struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	play   func(beep.Streamer)
	closed bool
}

// New opens the speaker. volume is in beep's exponential units, 0 is unity.
// If the device cannot be opened the returned Cues is silent.
func New(volume float64, logger *log.Logger) *Cues {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Cues{mixer: &beep.Mixer{}, volume: volume}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		logger.Warn("audio disabled", "error", err)
		return c
	}
	speaker.Play(c.mixer)
	c.play = func(s beep.Streamer) {
		speaker.Lock()
		c.mixer.Add(s)
		speaker.Unlock()
	}
	logger.Debug("audio ready", "rate", int(sampleRate))
	return c
}

// Enabled reports whether cues reach a device.
func (c *Cues) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.play != nil && !c.closed
}

// OnEvent queues the cue for e, if any.
func (c *Cues) OnEvent(e core.Event) {
	tone, ok := ToneFor(e.Kind)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.play == nil || c.closed {
		return
	}
	c.play(&effects.Volume{
		Streamer: tone.Streamer(sampleRate),
		Base:     2,
		Volume:   c.volume,
	})
}

// Close stops playback. Later events are ignored.
func (c *Cues) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.play == nil {
		c.closed = true
		return nil
	}
	c.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}
