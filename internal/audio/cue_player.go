// Package audio synthesises the simulation's sound cues with beep.
package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
)

const SampleRate = beep.SampleRate(44100)

// Cue describes one procedurally generated sound.
type Cue struct {
	FromHz   float64
	ToHz     float64
	Length   time.Duration
	Volume   float64
	Harmonic float64 // вес второй гармоники
	Decay    float64 // скорость экспоненциального затухания
}

// DefaultCues — сигналы, которые запрашивает симуляция.
var DefaultCues = map[string]Cue{
	"boss-entrance":      {FromHz: 70, ToHz: 140, Length: 1200 * time.Millisecond, Volume: 0.35, Harmonic: 0.4, Decay: 1.5},
	"boss-phase":         {FromHz: 220, ToHz: 110, Length: 600 * time.Millisecond, Volume: 0.3, Harmonic: 0.3, Decay: 3},
	"boss-rage":          {FromHz: 120, ToHz: 90, Length: 500 * time.Millisecond, Volume: 0.35, Harmonic: 0.6, Decay: 2},
	"boss-defeat":        {FromHz: 330, ToHz: 660, Length: 900 * time.Millisecond, Volume: 0.3, Harmonic: 0.2, Decay: 2},
	"wave-start":         {FromHz: 440, ToHz: 440, Length: 200 * time.Millisecond, Volume: 0.2, Decay: 8},
	"mini-event-warning": {FromHz: 880, ToHz: 660, Length: 300 * time.Millisecond, Volume: 0.2, Harmonic: 0.1, Decay: 5},
	"loot":               {FromHz: 990, ToHz: 1320, Length: 150 * time.Millisecond, Volume: 0.15, Decay: 10},
}

// CuePlayer plays named cues into a beep.Mixer. Mixer access is guarded by
// the supplied locker; with the speaker that is the speaker lock.
type CuePlayer struct {
	mu     sync.Locker
	mixer  *beep.Mixer
	sr     beep.SampleRate
	cues   map[string]Cue
	warned map[string]bool
}

// NewCuePlayer creates a player. A nil locker gets a private mutex.
func NewCuePlayer(mu sync.Locker, sr beep.SampleRate) *CuePlayer {
	if mu == nil {
		mu = &sync.Mutex{}
	}
	return &CuePlayer{
		mu:     mu,
		mixer:  &beep.Mixer{},
		sr:     sr,
		cues:   DefaultCues,
		warned: make(map[string]bool),
	}
}

// Streamer returns the mixer to hand to the speaker.
func (p *CuePlayer) Streamer() beep.Streamer {
	return p.mixer
}

// Play starts a cue. Unknown cues log once and do nothing.
func (p *CuePlayer) Play(name string) {
	cue, ok := p.cues[name]
	if !ok {
		if !p.warned[name] {
			p.warned[name] = true
			log.Printf("audio: unknown cue %q", name)
		}
		return
	}
	streamer := beep.Take(p.sr.N(cue.Length), NewToneGenerator(p.sr, cue))
	p.mu.Lock()
	p.mixer.Add(streamer)
	p.mu.Unlock()
}

// Active returns the number of cues still playing.
func (p *CuePlayer) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// Clear stops every playing cue.
func (p *CuePlayer) Clear() {
	p.mu.Lock()
	p.mixer.Clear()
	p.mu.Unlock()
}

// ToneGenerator generates a frequency sweep with a decaying envelope
type ToneGenerator struct {
	sr    beep.SampleRate
	cue   Cue
	pos   int
	phase float64
	total int
}

func NewToneGenerator(sr beep.SampleRate, cue Cue) *ToneGenerator {
	return &ToneGenerator{sr: sr, cue: cue, total: max(1, sr.N(cue.Length))}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := g.cue.FromHz + (g.cue.ToHz-g.cue.FromHz)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := math.Sin(g.phase) + g.cue.Harmonic*math.Sin(2*g.phase)
		// Короткая атака, затем затухание
		attack := math.Min(t/0.01, 1)
		sample *= g.cue.Volume * attack * math.Exp(-t*g.cue.Decay)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
