package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Device plays cues and music through the system speaker.
type Device struct {
	mixer  *beep.Mixer
	music  *beep.Ctrl
	volume *effects.Volume
	level  float64
}

// Open initializes the speaker. Music starts paused at the given volume.
func Open(volume float64, muted bool) (*Device, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	d := &Device{mixer: &beep.Mixer{}, level: volume}
	d.volume = withVolume(newMelody(sampleRate), volume)
	d.volume.Silent = d.volume.Silent || muted
	d.music = &beep.Ctrl{Streamer: d.volume, Paused: true}

	d.mixer.Add(d.music)
	speaker.Play(d.mixer)
	return d, nil
}

// Play queues a cue on the mixer.
func (d *Device) Play(c Cue) {
	speaker.Lock()
	d.mixer.Add(cueStreamer(sampleRate, c))
	speaker.Unlock()
}

// Resume unpauses the music.
func (d *Device) Resume() {
	speaker.Lock()
	d.music.Paused = false
	speaker.Unlock()
}

// Pause pauses the music.
func (d *Device) Pause() {
	speaker.Lock()
	d.music.Paused = true
	speaker.Unlock()
}

// Paused reports whether the music is paused.
func (d *Device) Paused() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return d.music.Paused
}

// ToggleMute silences or restores the music without pausing it.
func (d *Device) ToggleMute() {
	speaker.Lock()
	d.volume.Silent = !d.volume.Silent || d.level <= 0
	speaker.Unlock()
}

// Muted reports whether the music is silenced.
func (d *Device) Muted() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return d.volume.Silent
}

// Close stops playback.
func (d *Device) Close() {
	speaker.Clear()
	speaker.Close()
}
