package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const audioSampleRate = beep.SampleRate(44100)

type audioCue struct {
	ready bool
}

// initAudio sets up the speaker; failure is non-fatal, the viewer runs silent
func initAudio() *audioCue {
	a := &audioCue{}
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Second/10)); err == nil {
		a.ready = true
	}
	return a
}

// playReset plays a short confirmation tone for the reset-camera button
func (a *audioCue) playReset() {
	if !a.ready {
		return
	}
	sine, err := generators.SineTone(audioSampleRate, 660)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(audioSampleRate.N(60*time.Millisecond), sine))
}

func (a *audioCue) close() {
	if a.ready {
		speaker.Close()
	}
}
