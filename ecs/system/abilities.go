package system

import (
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// AbilityTimerSystem advances invulnerability, levitation, dash and attack
// timers, in that order.
type AbilityTimerSystem struct{}

func NewAbilityTimerSystem() *AbilityTimerSystem { return &AbilityTimerSystem{} }

func (s *AbilityTimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		inv.Frames--
		if inv.Frames <= 0 {
			ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		}
	})

	ecs.ForEach3(w,
		component.AbilitiesComponent.Kind(),
		component.PlayerComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, ab *component.Abilities, cfg *component.Player, body *component.PhysicsBody) {
			if ab.Floating {
				ab.FloatTimer++
				if ab.FloatTimer >= cfg.FloatFrames {
					ab.Floating = false
				}
			}

			if ab.Dashing {
				ab.DashTimer++
				if ab.DashTimer >= cfg.DashFrames {
					ab.Dashing = false
					body.VX = 0
				}
			}

			if ab.DashOnCooldown {
				ab.DashCooldownTimer++
				if ab.DashCooldownTimer >= cfg.DashCooldownFrames {
					ab.DashOnCooldown = false
				}
			}

			if ab.Attacking {
				ab.AttackTimer++
				if ab.AttackTimer >= cfg.AttackFrames {
					ab.Attacking = false
					ab.AttackOnCooldown = true
					ab.AttackCooldownTimer = 0
					restoreIdleFrame(w, e)
				}
			}

			if ab.AttackOnCooldown {
				ab.AttackCooldownTimer++
				if ab.AttackCooldownTimer >= cfg.AttackCooldownFrames {
					ab.AttackOnCooldown = false
				}
			}
		})
}

func restoreIdleFrame(w *ecs.World, e ecs.Entity) {
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return
	}
	if idle := anim.Idle(); idle != nil {
		s.Image = idle
	}
}
