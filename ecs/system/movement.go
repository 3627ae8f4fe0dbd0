package system

import (
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// MovementSystem applies the ability overrides to the requested velocity
// before the physics step: levitation, dash and climbing.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem { return &MovementSystem{} }

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach4(w,
		component.AbilitiesComponent.Kind(),
		component.PlayerComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, ab *component.Abilities, cfg *component.Player, body *component.PhysicsBody, t *component.Transform) {
			if ab.Floating {
				body.VY = -cfg.FloatSpeed
			}
			if ab.Dashing {
				body.VY = 0
				body.VX = cfg.DashSpeed * ab.DashDirection
			}

			if ab.Climbing && !touchingClimbable(w, e) {
				ab.Climbing = false
			}

			scale := 1.0
			if ab.Climbing {
				scale = 0
				body.VX = 0
				if body.VY < 0 {
					top := t.Y - body.Height/2
					if !pointInVolume(w, t.X, top-2, component.VolumeClimbable) {
						body.VY = 0
					}
				}
			}
			if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
				gs.Scale = scale
			} else {
				_ = ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: scale})
			}
		})
}

// FallResetSystem sends the player back to spawn once it drops below the
// level. Falling costs no health.
type FallResetSystem struct{}

func NewFallResetSystem() *FallResetSystem { return &FallResetSystem{} }

func (s *FallResetSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	boundsEnt, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, _ := ecs.Get(w, boundsEnt, component.LevelBoundsComponent.Kind())
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, t *component.Transform) {
		if t.Y > bounds.Height {
			ResetPlayer(w, e)
		}
	})
}
