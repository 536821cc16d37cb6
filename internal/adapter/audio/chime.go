// Package audio plays the confirmation chime for granted storms.
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	chimeFreq     = 880.0
	chimeDuration = 120 * time.Millisecond
	chimeVolume   = -1.0 // half amplitude at base 2
)

// Chime plays a short sine tone on the system speaker.
// It implements controller.SoundPlayer.
type Chime struct {
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// NewChime initializes the speaker. The caller should Close the chime on
// shutdown.
func NewChime(logger *slog.Logger) (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Chime{logger: logger}, nil
}

// PlayConfirmation queues the chime without waiting for it to finish.
func (c *Chime) PlayConfirmation() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	tone, err := Tone(sampleRate, chimeFreq, chimeDuration)
	if err != nil {
		c.logger.Warn("confirmation chime unavailable", "error", err)
		return
	}
	speaker.Play(tone)
}

// Close stops playback and releases the speaker.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	speaker.Close()
}

// Tone returns a finite sine tone streamer at half amplitude.
func Tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0fHz: %w", freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(d), sine),
		Base:     2,
		Volume:   chimeVolume,
	}, nil
}
