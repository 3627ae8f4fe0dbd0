package component

// Hitbox is the AABB an attack damages with, relative to its transform.
type Hitbox struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

var HitboxComponent = NewComponent[Hitbox]()
