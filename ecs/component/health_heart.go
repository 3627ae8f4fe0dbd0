package component

import "github.com/hajimehoshi/ebiten/v2"

// HealthHeart is one HUD slot of the player health bar.
type HealthHeart struct {
	Slot  int
	Full  *ebiten.Image
	Empty *ebiten.Image
}

var HealthHeartComponent = NewComponent[HealthHeart]()
