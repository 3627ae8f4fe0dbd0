package component

// Blink toggles Sprite.Dim every Interval frames while Frames remain.
type Blink struct {
	Frames   int
	Interval int
	Timer    int
	On       bool
}

var BlinkComponent = NewComponent[Blink]()
