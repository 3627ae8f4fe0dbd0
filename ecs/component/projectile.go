package component

type ProjectileKind string

const (
	ProjectileSlash ProjectileKind = "slash"
	ProjectileArrow ProjectileKind = "arrow"
	ProjectileFire  ProjectileKind = "fire"
)

// Projectile is a player attack. It damages the first enemy it overlaps and
// is consumed by that hit.
type Projectile struct {
	Kind   ProjectileKind
	Damage int
	VX     float64
	VY     float64
	// Order is the resolution pass. Lower passes claim hits first.
	Order int
	// StopOnPlatform removes the projectile when it touches a platform.
	StopOnPlatform bool
	// CullMargin removes the projectile once it is this far outside the view.
	// Zero disables culling.
	CullMargin float64
	// SpawnOffsetX/Y place the projectile relative to the attacker, with X
	// mirrored when the attacker faces left.
	SpawnOffsetX float64
	SpawnOffsetY float64
}

var ProjectileComponent = NewComponent[Projectile]()
