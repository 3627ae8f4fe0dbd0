package component

// PlayerCollision stores per-player contact state derived from physics.
type PlayerCollision struct {
	Grounded bool
	// GroundGrace counts frames since the sensor last touched ground.
	GroundGrace int
	Ceiling     bool
}

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
