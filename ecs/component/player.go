package component

// Player holds movement tuning. Speeds are pixels per frame, durations frames.
type Player struct {
	MoveSpeed  float64
	JumpSpeed  float64
	DashSpeed  float64
	FloatSpeed float64
	ClimbSpeed float64

	FloatFrames          int
	DashFrames           int
	DashCooldownFrames   int
	AttackFrames         int
	AttackCooldownFrames int
	InvulnerableFrames   int
	BlinkInterval        int
}

var PlayerComponent = NewComponent[Player]()
