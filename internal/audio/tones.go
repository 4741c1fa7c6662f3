package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveType selects the oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length oscillator with a linear fade at both ends to
// avoid clicks.
type tone struct {
	freq   float64
	phase  float64
	wave   WaveType
	volume float64
	rate   beep.SampleRate
	pos    int
	total  int
	fade   int
}

func newTone(rate beep.SampleRate, freq float64, d time.Duration, wave WaveType, volume float64) beep.Streamer {
	total := rate.N(d)
	fade := rate.N(5 * time.Millisecond)
	if fade*2 > total {
		fade = total / 2
	}
	return &tone{freq: freq, wave: wave, volume: volume, rate: rate, total: total, fade: fade}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		val *= t.volume * t.envelope()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) envelope() float64 {
	if t.fade == 0 {
		return 1
	}
	if t.pos < t.fade {
		return float64(t.pos) / float64(t.fade)
	}
	if remaining := t.total - t.pos; remaining < t.fade {
		return float64(remaining) / float64(t.fade)
	}
	return 1
}

func (t *tone) Err() error { return nil }

// newChime sequences two quick sine notes, low then high.
func newChime(rate beep.SampleRate, lowFreq, highFreq float64, noteLen time.Duration, volume float64) beep.Streamer {
	return beep.Seq(
		newTone(rate, lowFreq, noteLen, WaveSine, volume),
		newTone(rate, highFreq, noteLen, WaveSine, volume),
	)
}

// fallingTone sweeps from a start frequency down to an end frequency
// over its duration, with an exponential decay.
type fallingTone struct {
	startFreq float64
	endFreq   float64
	phase     float64
	volume    float64
	rate      beep.SampleRate
	pos       int
	total     int
}

func newFallingTone(rate beep.SampleRate, startFreq, endFreq float64, d time.Duration, volume float64) beep.Streamer {
	return &fallingTone{
		startFreq: startFreq,
		endFreq:   endFreq,
		volume:    volume,
		rate:      rate,
		total:     rate.N(d),
	}
}

func (f *fallingTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if f.pos >= f.total {
			return i, i > 0
		}

		progress := float64(f.pos) / float64(f.total)
		freq := f.startFreq + (f.endFreq-f.startFreq)*progress
		decay := math.Exp(-progress * 3)

		val := f.volume * decay * math.Sin(2*math.Pi*f.phase)
		samples[i][0] = val
		samples[i][1] = val

		f.phase += freq / float64(f.rate)
		f.phase -= math.Floor(f.phase)
		f.pos++
	}
	return len(samples), true
}

func (f *fallingTone) Err() error { return nil }

// pulseTrack is the looped background bed: a soft kick on each beat
// over a quiet bass drone.
type pulseTrack struct {
	rate    beep.SampleRate
	pos     int
	beatLen int
}

func newPulseTrack(rate beep.SampleRate) beep.Streamer {
	return &pulseTrack{rate: rate, beatLen: rate.N(500 * time.Millisecond)}
}

func (p *pulseTrack) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := p.rate.N(90 * time.Millisecond)
	for i := range samples {
		beatPos := p.pos % p.beatLen
		t := float64(beatPos) / float64(p.rate)

		var kick float64
		if beatPos < kickLen {
			env := 1 - float64(beatPos)/float64(kickLen)
			kick = 0.25 * env * math.Sin(2*math.Pi*55*(1+1.5*env)*t)
		}

		bass := 0.06 * math.Sin(2*math.Pi*110*t)

		val := kick + bass
		samples[i][0] = val
		samples[i][1] = val
		p.pos++
	}
	return len(samples), true
}

func (p *pulseTrack) Err() error { return nil }
