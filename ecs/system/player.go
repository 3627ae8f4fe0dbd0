package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// ResetPlayer returns the player to its spawn point and clears the attack
// state. Float and dash timers keep running.
func ResetPlayer(w *ecs.World, player ecs.Entity) {
	if spawn, ok := ecs.Get(w, player, component.SpawnPointComponent.Kind()); ok {
		Teleport(w, player, spawn.X, spawn.Y)
	}
	if ab, ok := ecs.Get(w, player, component.AbilitiesComponent.Kind()); ok {
		ab.Attacking = false
		ab.AttackTimer = 0
		ab.AttackOnCooldown = false
		ab.AttackCooldownTimer = 0
	}
}

// DamagePlayer removes one health point unless the player is invulnerable.
// Running out of health sends the player back to spawn at full health.
func DamagePlayer(w *ecs.World, player ecs.Entity) bool {
	if ecs.Has(w, player, component.InvulnerableComponent.Kind()) {
		return false
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok {
		return false
	}

	health.Current--
	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerDamaged, Entity: player})

	if health.Current <= 0 {
		ResetPlayer(w, player)
		health.Current = health.Max
		ecs.Remove(w, player, component.InvulnerableComponent.Kind())
		ecs.Remove(w, player, component.BlinkComponent.Kind())
		if s, ok := ecs.Get(w, player, component.SpriteComponent.Kind()); ok {
			s.Dim = false
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventPlayerDied, Entity: player})
		log.Debug("player died", "entity", player)
		return true
	}

	frames, interval := 0, 0
	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		frames, interval = p.InvulnerableFrames, p.BlinkInterval
	}
	if frames > 0 {
		_ = ecs.Add(w, player, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: frames})
		if interval > 0 {
			_ = ecs.Add(w, player, component.BlinkComponent.Kind(), &component.Blink{Frames: frames, Interval: interval})
		}
	}
	return true
}

// SwitchCharacter makes roster slot target the active character. It refuses
// the current slot, slots out of range, and any switch while levitating.
func SwitchCharacter(w *ecs.World, player ecs.Entity, target int) bool {
	roster, ok := ecs.Get(w, player, component.RosterComponent.Kind())
	if !ok || target == roster.Current || target < 0 || target >= len(roster.Characters) {
		return false
	}
	ab, ok := ecs.Get(w, player, component.AbilitiesComponent.Kind())
	if ok && ab.Floating {
		return false
	}

	roster.Current = target
	char := roster.Active()

	if anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok {
		anim.Walk = char.Walk
		anim.Climb = char.Climb
		anim.Reset()
		if s, ok := ecs.Get(w, player, component.SpriteComponent.Kind()); ok {
			if idle := anim.Idle(); idle != nil {
				s.Image = idle
			}
		}
	}
	if ab != nil {
		ab.Attacking = false
		ab.AttackTimer = 0
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventCharacterSwitch, Entity: player, Data: char.Name})
	log.Debug("character switched", "name", char.Name)
	return true
}
