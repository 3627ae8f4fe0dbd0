package component

import "image/color"

// LevelBounds stores the world-space size of the current level and the colour
// behind it.
type LevelBounds struct {
	Width      float64
	Height     float64
	Background color.Color
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
