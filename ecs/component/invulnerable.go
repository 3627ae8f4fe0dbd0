package component

// Invulnerable marks an entity as temporarily immune to damage. Frames counts
// down each tick and the component is removed when it reaches zero.
type Invulnerable struct {
	Frames int
}

var InvulnerableComponent = NewComponent[Invulnerable]()
