package component

// GameState — фаза игры
type GameState int

const (
	BuildState GameState = iota
	WaveState
	GameOverState
)

func (s GameState) String() string {
	switch s {
	case BuildState:
		return "build"
	case WaveState:
		return "wave"
	case GameOverState:
		return "game over"
	}
	return "unknown"
}
