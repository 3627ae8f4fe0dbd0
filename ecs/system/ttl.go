package system

import (
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// TTLSystem decrements frame-based TTL components and destroys entities when
// the TTL reaches zero.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if ttl.Frames > 0 {
			ttl.Frames--
			if ttl.Frames > 0 {
				return
			}
		}
		ecs.DestroyEntity(w, e)
	})
}

// FlickerSystem cycles sprite images on a fixed tick interval.
type FlickerSystem struct{}

func NewFlickerSystem() *FlickerSystem { return &FlickerSystem{} }

func (s *FlickerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.FlickerComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, f *component.Flicker, sprite *component.Sprite) {
		if len(f.Frames) == 0 || f.Interval <= 0 {
			return
		}
		f.Timer++
		if f.Timer < f.Interval {
			return
		}
		f.Timer = 0
		f.Index = (f.Index + 1) % len(f.Frames)
		sprite.Image = f.Frames[f.Index]
	})
}
