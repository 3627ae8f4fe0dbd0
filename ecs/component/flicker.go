package component

import "github.com/hajimehoshi/ebiten/v2"

// Flicker cycles the sprite image through Frames every Interval ticks.
type Flicker struct {
	Frames   []*ebiten.Image
	Interval int
	Timer    int
	Index    int
}

var FlickerComponent = NewComponent[Flicker]()
