package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// chirp sweeps linearly from one frequency to another with an exponential fade.
type chirp struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

func newChirp(sr beep.SampleRate, from, to float64, d time.Duration) *chirp {
	return &chirp{sr: sr, from: from, to: to, samples: sr.N(d)}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.pos >= c.samples {
			return i, i > 0
		}
		progress := float64(c.pos) / float64(c.samples)
		freq := c.from + (c.to-c.from)*progress
		c.phase += freq / float64(c.sr)
		c.phase -= math.Floor(c.phase)

		v := 0.3 * math.Exp(-3*progress) * math.Sin(2*math.Pi*c.phase)
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// melody loops a short pentatonic phrase forever.
type melody struct {
	sr    beep.SampleRate
	notes []float64
	note  int // samples per note
	pos   int
	phase float64
}

func newMelody(sr beep.SampleRate) *melody {
	return &melody{
		sr:    sr,
		notes: []float64{262, 294, 330, 392, 440, 392, 330, 294},
		note:  sr.N(300 * time.Millisecond),
	}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (m.pos / m.note) % len(m.notes)
		within := float64(m.pos%m.note) / float64(m.note)

		m.phase += m.notes[idx] / float64(m.sr)
		m.phase -= math.Floor(m.phase)

		// Soft square: sine with a touch of the third harmonic.
		v := math.Sin(2*math.Pi*m.phase) + 0.2*math.Sin(6*math.Pi*m.phase)
		v *= 0.12 * (1 - 0.6*within)

		samples[i][0] = v
		samples[i][1] = v
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// tone returns a plain sine of the given length, or silence if the generator
// rejects the frequency.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(sr.N(d))
	}
	return beep.Take(sr.N(d), withVolume(sine, 0.25))
}

// withVolume scales a stream linearly; 0 silences it.
func withVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// cueStreamer builds a fresh finite stream for one cue.
func cueStreamer(sr beep.SampleRate, c Cue) beep.Streamer {
	switch c {
	case CuePickup:
		return beep.Seq(
			newChirp(sr, 880, 1320, 60*time.Millisecond),
			newChirp(sr, 1320, 1760, 60*time.Millisecond),
		)
	case CueHit:
		return newChirp(sr, 220, 80, 180*time.Millisecond)
	case CueTeleport:
		return newChirp(sr, 300, 1500, 400*time.Millisecond)
	case CueLevelComplete:
		return beep.Seq(
			tone(sr, 523, 120*time.Millisecond),
			tone(sr, 659, 120*time.Millisecond),
			tone(sr, 784, 240*time.Millisecond),
		)
	case CueLost:
		return beep.Seq(
			tone(sr, 392, 200*time.Millisecond),
			tone(sr, 330, 200*time.Millisecond),
			newChirp(sr, 262, 110, 500*time.Millisecond),
		)
	default:
		return beep.Silence(0)
	}
}
