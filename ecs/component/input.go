package component

// Input is the per-frame intent of the player, sampled once by the input system.
type Input struct {
	MoveX float64
	Up    bool
	Down  bool

	JumpPressed     bool
	DownPressed     bool
	AbilityPressed  bool
	AbilityReleased bool
	AttackPressed   bool
	ResetPressed    bool

	// SwitchTo is the roster slot requested this frame, or -1.
	SwitchTo int
}

var InputComponent = NewComponent[Input]()
