package system

import (
	"math"
	"time"

	"go-wave-defense/internal/config"
	putils "go-wave-defense/pkg/utils"
)

// PerformanceSystem хранит скользящее окно времени прохождения волн и
// оценку игрока в [0, 1].
type PerformanceSystem struct {
	history []time.Duration
	score   float64
}

func NewPerformanceSystem() *PerformanceSystem {
	return &PerformanceSystem{score: config.NeutralPerformance}
}

// Score returns the current rolling performance score.
func (s *PerformanceSystem) Score() float64 {
	return s.score
}

// History returns a copy of the retained completion times, oldest first.
func (s *PerformanceSystem) History() []time.Duration {
	return append([]time.Duration(nil), s.history...)
}

// RecordWaveCompletion appends one completion time and recomputes the score.
func (s *PerformanceSystem) RecordWaveCompletion(wave int, completion time.Duration) float64 {
	if completion < 0 {
		completion = 0
	}
	s.history = append(s.history, completion)
	if len(s.history) > config.PerformanceWindow {
		s.history = s.history[len(s.history)-config.PerformanceWindow:]
	}
	s.recompute()
	return s.score
}

// Restore seeds the window from persisted completion times, oldest first.
func (s *PerformanceSystem) Restore(times []time.Duration) {
	s.history = nil
	for _, t := range times {
		if t < 0 {
			t = 0
		}
		s.history = append(s.history, t)
	}
	if len(s.history) > config.PerformanceWindow {
		s.history = s.history[len(s.history)-config.PerformanceWindow:]
	}
	if len(s.history) == 0 {
		s.score = config.NeutralPerformance
		return
	}
	s.recompute()
}

// Reset clears history and returns the score to the neutral midpoint.
func (s *PerformanceSystem) Reset() {
	s.history = nil
	s.score = config.NeutralPerformance
}

func (s *PerformanceSystem) recompute() {
	var sum float64
	for _, t := range s.history {
		sum += float64(t)
	}
	avg := sum / float64(len(s.history))
	score := 1 - avg/float64(config.ExpectedWaveTime)
	if math.IsNaN(score) {
		score = config.NeutralPerformance
	}
	s.score = putils.Clamp(score, 0, 1)
}
