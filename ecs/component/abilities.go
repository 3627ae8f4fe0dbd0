package component

// Abilities tracks the timers of the character abilities. Timers count up.
type Abilities struct {
	Floating   bool
	FloatTimer int

	Dashing           bool
	DashTimer         int
	DashDirection     float64
	DashOnCooldown    bool
	DashCooldownTimer int

	Climbing bool

	Attacking           bool
	AttackTimer         int
	AttackOnCooldown    bool
	AttackCooldownTimer int
}

var AbilitiesComponent = NewComponent[Abilities]()
