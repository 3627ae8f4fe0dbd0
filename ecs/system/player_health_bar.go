package system

import (
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// PlayerHealthBarSystem shows a full heart for every remaining health point
// and an empty one for every point lost.
type PlayerHealthBarSystem struct{}

func NewPlayerHealthBarSystem() *PlayerHealthBarSystem { return &PlayerHealthBarSystem{} }

func (s *PlayerHealthBarSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}

	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok || health.Max <= 0 {
		return
	}

	current := health.Current
	if current < 0 {
		current = 0
	}
	if current > health.Max {
		current = health.Max
	}

	ecs.ForEach2(w, component.HealthHeartComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, heart *component.HealthHeart, sprite *component.Sprite) {
		if heart.Slot < current {
			sprite.Image = heart.Full
		} else {
			sprite.Image = heart.Empty
		}
	})
}
