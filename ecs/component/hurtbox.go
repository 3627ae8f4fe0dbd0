package component

// Hurtbox is the AABB an entity can be hit on, relative to its transform.
type Hurtbox struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

var HurtboxComponent = NewComponent[Hurtbox]()
