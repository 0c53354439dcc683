package system

import (
	"fmt"
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/timer"
)

const CueMiniEventWarning = "mini-event-warning"

// MiniEventPhase — фаза жизненного цикла мини-события.
type MiniEventPhase int

const (
	MiniEventIdle MiniEventPhase = iota
	MiniEventWarningPhase
	MiniEventActivePhase
)

func (p MiniEventPhase) String() string {
	switch p {
	case MiniEventWarningPhase:
		return "warning"
	case MiniEventActivePhase:
		return "active"
	}
	return "idle"
}

// MiniEventSystem runs warning -> active -> ended for the wave's mini-event.
type MiniEventSystem struct {
	sched      *timer.Scheduler
	dispatcher *event.Dispatcher
	sound      interfaces.SoundPlayer
	economy    interfaces.Economy
	notifier   interfaces.Notifier
	gameOver   interfaces.GameOverSignal

	current *component.MiniEventConfig
	wave    int
	phase   MiniEventPhase
}

func NewMiniEventSystem(sched *timer.Scheduler, dispatcher *event.Dispatcher, sound interfaces.SoundPlayer,
	economy interfaces.Economy, notifier interfaces.Notifier, gameOver interfaces.GameOverSignal) *MiniEventSystem {
	return &MiniEventSystem{
		sched:      sched,
		dispatcher: dispatcher,
		sound:      sound,
		economy:    economy,
		notifier:   notifier,
		gameOver:   gameOver,
	}
}

func (s *MiniEventSystem) owner() string {
	return fmt.Sprintf("minievent:%d", s.wave)
}

// Start begins the warning phase. A nil config does nothing.
func (s *MiniEventSystem) Start(wave int, cfg *component.MiniEventConfig) {
	s.Stop()
	if cfg == nil {
		return
	}
	s.wave = wave
	s.current = cfg
	s.phase = MiniEventWarningPhase
	s.dispatch(event.MiniEventWarning)
	if s.sound != nil {
		s.sound.Play(CueMiniEventWarning)
	}
	s.sched.After(s.owner(), cfg.WarningTime, s.activate)
}

func (s *MiniEventSystem) activate() {
	if s.gameOver != nil && s.gameOver.IsGameOver() {
		s.Stop()
		return
	}
	if s.current == nil {
		return
	}
	s.phase = MiniEventActivePhase
	s.dispatch(event.MiniEventStarted)
	s.notify(fmt.Sprintf("Mini-event: %s", s.current.Type))
	log.Printf("Mini-event %s active on wave %d for %v", s.current.Type, s.wave, s.current.Duration)
	s.sched.After(s.owner(), s.current.Duration, s.end)
}

func (s *MiniEventSystem) end() {
	if s.gameOver != nil && s.gameOver.IsGameOver() {
		s.Stop()
		return
	}
	if s.current == nil {
		return
	}
	rewards := s.current.Rewards
	s.dispatch(event.MiniEventEnded)
	if rewards.Gold > 0 && s.economy != nil {
		s.economy.AddGold(rewards.Gold)
	}
	s.notify(rewards.Message)
	s.current = nil
	s.phase = MiniEventIdle
}

// Stop drops the current event without rewards.
func (s *MiniEventSystem) Stop() {
	if s.current == nil {
		return
	}
	s.sched.CancelOwner(s.owner())
	s.current = nil
	s.phase = MiniEventIdle
}

// ActiveEffects returns the effects while the event is in its active phase.
func (s *MiniEventSystem) ActiveEffects() (defs.MiniEventEffects, bool) {
	if s.current == nil || s.phase != MiniEventActivePhase {
		return defs.MiniEventEffects{}, false
	}
	return s.current.Effects, true
}

func (s *MiniEventSystem) Phase() MiniEventPhase {
	return s.phase
}

func (s *MiniEventSystem) Current() *component.MiniEventConfig {
	return s.current
}

func (s *MiniEventSystem) dispatch(t event.EventType) {
	if s.dispatcher == nil || s.current == nil {
		return
	}
	s.dispatcher.Dispatch(event.Event{Type: t, Data: event.MiniEventData{Wave: s.wave, Type: s.current.Type}})
}

func (s *MiniEventSystem) notify(msg string) {
	if s.notifier != nil && msg != "" {
		s.notifier.Notify(msg)
	}
}
