package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws Image centred on the transform unless an origin is given.
type Sprite struct {
	Image      *ebiten.Image
	Source     image.Rectangle
	UseSource  bool
	OriginX    float64
	OriginY    float64
	FacingLeft bool
	// Dim draws the sprite at half alpha (damage blink).
	Dim bool
}

var SpriteComponent = NewComponent[Sprite]()
