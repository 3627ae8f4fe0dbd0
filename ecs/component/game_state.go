package component

// GameState is the per-world singleton describing level progression.
type GameState struct {
	LevelIndex int
	LevelCount int
	LevelName  string
	Victory    bool
}

func (g *GameState) LastLevel() bool {
	return g.LevelIndex >= g.LevelCount-1
}

var GameStateComponent = NewComponent[GameState]()
