package entity

import (
	"fmt"

	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

const playerPrefab = "player.yaml"

// PlayerOptions carries the configured tuning into a freshly built player.
type PlayerOptions struct {
	Tuning     component.Player
	MaxHealth  int
	Characters []string
	// WalkStep overrides the prefab's animation step when positive.
	WalkStep float64
	SpawnX   float64
	SpawnY   float64
}

func NewPlayer(w *ecs.World, opts PlayerOptions) (ecs.Entity, error) {
	e, err := BuildEntity(w, playerPrefab)
	if err != nil {
		return 0, err
	}
	if err := configurePlayer(w, e, opts); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: %w", err)
	}
	return e, nil
}

func configurePlayer(w *ecs.World, e ecs.Entity, opts PlayerOptions) error {
	tuning := opts.Tuning
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &tuning); err != nil {
		return fmt.Errorf("add tuning: %w", err)
	}

	if opts.MaxHealth > 0 {
		if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: opts.MaxHealth, Max: opts.MaxHealth}); err != nil {
			return fmt.Errorf("add health: %w", err)
		}
	}

	if len(opts.Characters) > 0 {
		roster, err := LoadRoster(opts.Characters)
		if err != nil {
			return err
		}
		if err := ecs.Add(w, e, component.RosterComponent.Kind(), roster); err != nil {
			return fmt.Errorf("add roster: %w", err)
		}
		applyActiveCharacter(w, e)
	}

	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok && opts.WalkStep > 0 {
		anim.StepDistance = opts.WalkStep
	}

	if err := ecs.Add(w, e, component.SpawnPointComponent.Kind(), &component.SpawnPoint{
		X:         opts.SpawnX,
		Y:         opts.SpawnY,
		Activated: map[string]bool{},
	}); err != nil {
		return fmt.Errorf("add spawn point: %w", err)
	}
	return SetEntityTransform(w, e, opts.SpawnX, opts.SpawnY, 0)
}
