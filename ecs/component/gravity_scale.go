package component

// GravityScale scales world gravity for a dynamic body.
// Climbing sets it to zero; everything else runs at 1.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()
