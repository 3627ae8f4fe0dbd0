package system

import (
	"math"

	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// AnimationSystem steps walk and climb cycles by distance moved rather than
// by time, and keeps the sprite facing the direction of travel.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w,
		component.AnimationComponent.Kind(),
		component.SpriteComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite, body *component.PhysicsBody) {
			step := anim.StepDistance
			if step <= 0 {
				step = 20
			}

			climbing := false
			if ab, ok := ecs.Get(w, e, component.AbilitiesComponent.Kind()); ok {
				climbing = ab.Climbing
			}

			if climbing {
				if len(anim.Climb) == 0 {
					return
				}
				anim.ClimbDistance += math.Abs(body.VY)
				if anim.ClimbDistance >= step {
					anim.ClimbIndex = (anim.ClimbIndex + 1) % len(anim.Climb)
					anim.ClimbDistance = 0
				}
				sprite.Image = anim.Climb[anim.ClimbIndex%len(anim.Climb)]
				return
			}

			if len(anim.Walk) == 0 {
				return
			}
			dx := body.VX
			if dx < 0 {
				sprite.FacingLeft = true
			} else if dx > 0 {
				sprite.FacingLeft = false
			}

			if math.Abs(dx) <= 0.1 {
				anim.WalkIndex = 0
				anim.WalkDistance = 0
				sprite.Image = anim.Walk[0]
				return
			}

			anim.WalkDistance += math.Abs(dx)
			if anim.WalkDistance >= step {
				anim.WalkIndex = (anim.WalkIndex + 1) % len(anim.Walk)
				anim.WalkDistance = 0
				sprite.Image = anim.Walk[anim.WalkIndex]
			}
		})
}
