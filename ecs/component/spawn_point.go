package component

// SpawnPoint is where the player returns on reset, and which checkpoints have
// already moved it.
type SpawnPoint struct {
	X         float64
	Y         float64
	Activated map[string]bool
}

var SpawnPointComponent = NewComponent[SpawnPoint]()
