package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	tickDuration = 40 * time.Millisecond
)

// sound plays a short tone per slider step; a nil or disabled sound is silent
type sound struct {
	ready bool
}

// newSound initializes the speaker when enabled
// On failure the returned sound is silent and the error is reported for logging
func newSound(enabled bool) (*sound, error) {
	if !enabled {
		return &sound{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &sound{}, err
	}
	return &sound{ready: true}, nil
}

func (s *sound) tick(v int) {
	if s == nil || !s.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, tickFrequency(v))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tickDuration), sine))
}

func (s *sound) close() {
	if s == nil || !s.ready {
		return
	}
	speaker.Close()
}
