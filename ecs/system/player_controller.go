package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
	"github.com/milk9111/rpgplatformer/ecs/entity"
)

// ProjectileSpawner builds an attack prefab in front of (x, y).
type ProjectileSpawner func(w *ecs.World, prefab string, x, y float64, facingLeft bool) (ecs.Entity, error)

// PlayerControllerSystem turns the sampled input into player intent: reset,
// character switch, jump, ability start and attack.
type PlayerControllerSystem struct {
	spawn ProjectileSpawner
}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{spawn: entity.SpawnProjectile}
}

func NewPlayerControllerSystemWithSpawner(spawn ProjectileSpawner) *PlayerControllerSystem {
	return &PlayerControllerSystem{spawn: spawn}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach4(w,
		component.InputComponent.Kind(),
		component.PlayerComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.AbilitiesComponent.Kind(),
		func(e ecs.Entity, input *component.Input, cfg *component.Player, body *component.PhysicsBody, ab *component.Abilities) {
			if input.ResetPressed {
				ResetPlayer(w, e)
			}
			if input.SwitchTo >= 0 {
				SwitchCharacter(w, e, input.SwitchTo)
			}

			climbable := touchingClimbable(w, e)

			if input.JumpPressed {
				if grounded(w, e) {
					body.VY = -cfg.JumpSpeed
				} else if ab.Climbing {
					ab.Climbing = false
					body.VY = -cfg.JumpSpeed
				}
			}
			if input.DownPressed && climbable {
				ab.Climbing = false
			}

			body.VX = input.MoveX * cfg.MoveSpeed

			if input.AbilityPressed {
				p.startAbility(w, e, cfg, body, ab, climbable)
			}
			if input.AbilityReleased && ab.Climbing {
				body.VY = 0
			}

			if input.AttackPressed {
				p.PerformAttack(w, e)
			}
		})
}

// startAbility tries climb, then dash, then levitate.
func (p *PlayerControllerSystem) startAbility(w *ecs.World, e ecs.Entity, cfg *component.Player, body *component.PhysicsBody, ab *component.Abilities, climbable bool) {
	roster, ok := ecs.Get(w, e, component.RosterComponent.Kind())
	if !ok {
		return
	}

	switch {
	case climbable:
		ab.Climbing = true
		body.VY = -cfg.ClimbSpeed
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok && len(anim.Climb) > 0 {
			anim.ClimbIndex = 0
			anim.ClimbDistance = 0
			if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
				s.Image = anim.Climb[0]
			}
		}
	case roster.Can(component.AbilityDash) && !ab.Dashing:
		if ab.DashOnCooldown {
			return
		}
		ab.Dashing = true
		ab.DashTimer = 0
		ab.DashOnCooldown = true
		ab.DashCooldownTimer = 0
		ab.DashDirection = 1
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && s.FacingLeft {
			ab.DashDirection = -1
		}
	case roster.Can(component.AbilityFloat) && grounded(w, e):
		ab.Floating = true
		ab.FloatTimer = 0
	}
}

// PerformAttack spawns the active character's attack unless an attack is
// running or cooling down.
func (p *PlayerControllerSystem) PerformAttack(w *ecs.World, player ecs.Entity) bool {
	ab, ok := ecs.Get(w, player, component.AbilitiesComponent.Kind())
	if !ok || ab.Attacking || ab.AttackOnCooldown {
		return false
	}
	roster, ok := ecs.Get(w, player, component.RosterComponent.Kind())
	if !ok {
		return false
	}
	char := roster.Active()
	if char == nil {
		return false
	}

	ab.Attacking = true
	ab.AttackTimer = 0

	if char.Attack == "" || p.spawn == nil {
		return true
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return true
	}
	facingLeft := false
	if s, ok := ecs.Get(w, player, component.SpriteComponent.Kind()); ok {
		facingLeft = s.FacingLeft
	}
	if _, err := p.spawn(w, char.Attack, t.X, t.Y, facingLeft); err != nil {
		log.Warn("spawn attack", "prefab", char.Attack, "err", err)
	}
	return true
}
