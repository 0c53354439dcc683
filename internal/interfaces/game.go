package interfaces

// GameOverSignal is checked at the top of every recurring tick.
type GameOverSignal interface {
	IsGameOver() bool
}

type Economy interface {
	AddGold(amount int)
	SpendGold(amount int) bool
	Gold() int
}

// Notifier shows a toast message.
type Notifier interface {
	Notify(message string)
}

// Rewards unlocks cosmetics or resources.
type Rewards interface {
	Unlock(id string)
}

// SoundPlayer plays a named cue, fire-and-forget.
type SoundPlayer interface {
	Play(cue string)
}

// GameContext — то, что StateSystem просит у игры при смене фазы.
type GameContext interface {
	StartWave()
	ClearEnemies()
}
