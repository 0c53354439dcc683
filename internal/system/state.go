// internal/system/state.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/interfaces"
)

type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.WaveEnded, ss)
	eventDispatcher.Subscribe(event.GameOver, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		s.SwitchToBuildState()
	case event.GameOver:
		s.ecs.SetGameOver()
	}
}

// SwitchToBuildState убирает оставшихся врагов. После конца игры фаза не меняется.
func (s *StateSystem) SwitchToBuildState() {
	if s.ecs.IsGameOver() {
		return
	}
	s.ecs.GameState = component.BuildState
	s.gameContext.ClearEnemies()
}

func (s *StateSystem) SwitchToWaveState() bool {
	if s.ecs.IsGameOver() || s.ecs.GameState == component.WaveState {
		return false
	}
	s.ecs.GameState = component.WaveState
	s.gameContext.StartWave()
	return true
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}
