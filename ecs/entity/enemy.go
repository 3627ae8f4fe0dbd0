package entity

import (
	"fmt"
	"path"
	"strings"

	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
	"github.com/milk9111/rpgplatformer/levels"
	"github.com/milk9111/rpgplatformer/prefabs"
)

const defaultEnemyPrefab = "boxing_ghost.yaml"

// NewEnemy builds a patrolling enemy from a level entity. It starts moving
// right and up at its configured speeds. seq is the enemy's position in the
// level's entity list and orders combat checks.
func NewEnemy(w *ecs.World, ent levels.Entity, seq int) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("enemy: world is nil")
	}
	props, err := ent.Enemy()
	if err != nil {
		return 0, err
	}
	prefab := props.Prefab
	if prefab == "" {
		prefab = defaultEnemyPrefab
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return 0, fmt.Errorf("enemy: load %q: %w", prefab, err)
	}
	return buildEnemy(w, prefab, spec, ent, props, seq)
}

func buildEnemy(w *ecs.World, prefab string, spec entityPrefabSpec, ent levels.Entity, props levels.EnemyProps, seq int) (ecs.Entity, error) {
	e, err := buildFromSpec(w, prefab, spec)
	if err != nil {
		return 0, err
	}
	fail := func(op string, err error) (ecs.Entity, error) {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("enemy: %s: %w", op, err)
	}

	if !ecs.Has(w, e, component.EnemyTagComponent.Kind()) {
		if err := ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
			return fail("add tag", err)
		}
	}
	// Prefabs without a health section still die to one hit.
	if !ecs.Has(w, e, component.HealthComponent.Kind()) {
		if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: 1, Max: 1}); err != nil {
			return fail("add health", err)
		}
	}

	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		Name:   strings.TrimSuffix(path.Base(prefab), path.Ext(prefab)),
		Seq:    seq,
		Left:   props.Left,
		Right:  props.Right,
		Top:    props.Top,
		Bottom: props.Bottom,
		SpeedX: props.SpeedX,
		SpeedY: props.SpeedY,
		VX:     props.SpeedX,
		VY:     -props.SpeedY,
	}); err != nil {
		return fail("add patrol", err)
	}

	if err := SetEntityTransform(w, e, ent.X, ent.Y, 0); err != nil {
		return fail("override transform", err)
	}
	return e, nil
}
