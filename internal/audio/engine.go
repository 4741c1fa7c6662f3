// Package audio plays short synthesized cues for game events. All sound
// is generated, no assets. When the audio device cannot be opened the
// engine degrades to silent mode and every call becomes a no-op.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a game event worth a sound.
type Cue int

const (
	CueJump Cue = iota
	CuePickup
	CueShieldHit
	CueGameOver
	CuePurchase
)

// Engine owns the speaker and a mixer that all cues play through.
type Engine struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *beep.Ctrl
	logger *log.Logger
	ready  bool
	muted  bool
}

// NewEngine creates an engine without touching the audio device.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{mixer: &beep.Mixer{}, logger: logger}
}

// Init opens the speaker. Failure is logged and leaves the engine in
// silent mode; the game keeps running without sound.
func (e *Engine) Init() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ready {
		return
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		e.logger.Warn("audio unavailable, running silent", "error", err)
		return
	}
	speaker.Play(e.mixer)
	e.ready = true
}

// Play schedules a cue. Silent or muted engines drop it.
func (e *Engine) Play(cue Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ready || e.muted {
		return
	}

	s := cueStreamer(cue)
	if s == nil {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// StartMusic begins the looped background pulse. Restarting while
// already playing is a no-op.
func (e *Engine) StartMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ready || e.muted {
		return
	}
	if e.music != nil && !e.music.Paused {
		return
	}

	// The pulse track streams indefinitely; the Ctrl is the off switch.
	ctrl := &beep.Ctrl{Streamer: newPulseTrack(sampleRate)}
	speaker.Lock()
	e.music = ctrl
	e.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMusic pauses the background loop.
func (e *Engine) StopMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.music != nil {
		speaker.Lock()
		e.music.Paused = true
		speaker.Unlock()
	}
}

// ToggleMute flips the mute state and reports the new value. Muting
// also silences the music loop.
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	muted := !e.muted
	e.muted = muted
	music := e.music
	ready := e.ready
	e.mu.Unlock()

	if ready && music != nil {
		speaker.Lock()
		music.Paused = muted
		speaker.Unlock()
	}
	return muted
}

// SetMuted forces the mute state, used by the --mute flag.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	e.muted = muted
	e.mu.Unlock()
}

// Muted reports whether cues are currently suppressed.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Close drops everything from the mixer.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ready {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.music = nil
	e.ready = false
}

// cueStreamer maps a cue to its synthesized sound.
func cueStreamer(cue Cue) beep.Streamer {
	switch cue {
	case CueJump:
		return newTone(sampleRate, 330, 60*time.Millisecond, WaveSquare, 0.15)
	case CuePickup:
		return newChime(sampleRate, 880, 1320, 90*time.Millisecond, 0.25)
	case CueShieldHit:
		return newTone(sampleRate, 140, 180*time.Millisecond, WaveSaw, 0.3)
	case CueGameOver:
		return newFallingTone(sampleRate, 440, 110, 650*time.Millisecond, 0.3)
	case CuePurchase:
		return newChime(sampleRate, 660, 990, 70*time.Millisecond, 0.2)
	default:
		return nil
	}
}
