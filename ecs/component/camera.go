package component

// Camera follows its target. The camera entity's Transform is the view centre.
type Camera struct {
	Zoom       float64
	Smoothness float64
	ViewWidth  float64
	ViewHeight float64
}

var CameraComponent = NewComponent[Camera]()
