package component

// Enemy patrols inside a rectangle, bouncing off its edges.
type Enemy struct {
	Name string
	// Seq is the enemy's index in its level's entity list.
	Seq    int
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	SpeedX float64
	SpeedY float64
	VX     float64
	VY     float64
}

var EnemyComponent = NewComponent[Enemy]()
