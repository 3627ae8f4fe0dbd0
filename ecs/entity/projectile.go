package entity

import (
	"fmt"
	"math"

	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// SpawnProjectile builds an attack prefab next to an attacker at (x, y). The
// prefab's offset and speed are mirrored when the attacker faces left.
func SpawnProjectile(w *ecs.World, prefab string, x, y float64, facingLeft bool) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := AimProjectile(w, e, x, y, facingLeft); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("projectile %q: %w", prefab, err)
	}
	return e, nil
}

// AimProjectile places a built projectile relative to its attacker.
func AimProjectile(w *ecs.World, e ecs.Entity, x, y float64, facingLeft bool) error {
	p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if !ok {
		return fmt.Errorf("entity has no projectile component")
	}
	dir := 1.0
	if facingLeft {
		dir = -1
	}
	p.VX = dir * math.Abs(p.VX)
	if err := SetEntityTransform(w, e, x+dir*p.SpawnOffsetX, y+p.SpawnOffsetY, 0); err != nil {
		return err
	}
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		s.FacingLeft = facingLeft
	}
	return nil
}
