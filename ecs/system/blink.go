package system

import (
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// BlinkSystem alternates Sprite.Dim every Interval frames and clears it when
// the blink runs out.
type BlinkSystem struct{}

func NewBlinkSystem() *BlinkSystem { return &BlinkSystem{} }

func (s *BlinkSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.BlinkComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, b *component.Blink, sprite *component.Sprite) {
		if b.Interval <= 0 {
			b.Interval = 1
		}
		b.Timer++
		if b.Timer >= b.Interval {
			b.Timer = 0
			b.On = !b.On
		}
		b.Frames--
		if b.Frames <= 0 {
			sprite.Dim = false
			ecs.Remove(w, e, component.BlinkComponent.Kind())
			return
		}
		sprite.Dim = b.On
	})
}
