package audio

import (
	"math"
	"testing"
)

func TestCuePlayerQueuesKnownCues(t *testing.T) {
	p := NewCuePlayer(nil, SampleRate)
	p.Play("boss-entrance")
	p.Play("loot")
	if got := p.Active(); got != 2 {
		t.Fatalf("Active = %d, want 2", got)
	}
	p.Clear()
	if got := p.Active(); got != 0 {
		t.Errorf("Active after Clear = %d, want 0", got)
	}
}

func TestCuePlayerIgnoresUnknownCue(t *testing.T) {
	p := NewCuePlayer(nil, SampleRate)
	p.Play("no-such-cue")
	p.Play("no-such-cue")
	if got := p.Active(); got != 0 {
		t.Errorf("Active = %d, want 0", got)
	}
}

func TestCueDrainsFromMixer(t *testing.T) {
	p := NewCuePlayer(nil, SampleRate)
	p.Play("loot")
	buf := make([][2]float64, 1024)
	n := SampleRate.N(DefaultCues["loot"].Length)
	for streamed := 0; streamed <= n+len(buf); streamed += len(buf) {
		p.Streamer().Stream(buf)
	}
	if got := p.Active(); got != 0 {
		t.Errorf("Active after draining = %d, want 0", got)
	}
}

func TestToneGeneratorStaysBounded(t *testing.T) {
	for name, cue := range DefaultCues {
		g := NewToneGenerator(SampleRate, cue)
		buf := make([][2]float64, 4096)
		n, ok := g.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("%s: Stream = %d, %v", name, n, ok)
		}
		for _, s := range buf {
			if math.IsNaN(s[0]) || math.Abs(s[0]) > 1 {
				t.Fatalf("%s: sample %v out of range", name, s[0])
			}
		}
	}
}
