package system

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/milk9111/rpgplatformer/common"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// CombatSettings controls the hit flash shown on damaged enemies.
type CombatSettings struct {
	FlashFrames   int
	FlashInterval int
}

// CombatSystem resolves player projectiles against enemies. Projectiles are
// processed by ascending Order; each one damages at most one enemy and is
// consumed by the hit. Defeated enemies are removed after every projectile
// has been resolved.
type CombatSystem struct {
	settings CombatSettings
}

func NewCombatSystem(settings CombatSettings) *CombatSystem {
	return &CombatSystem{settings: settings}
}

type combatTarget struct {
	entity ecs.Entity
	box    common.Rect
	health *component.Health
	seq    int
}

type combatShot struct {
	entity     ecs.Entity
	projectile *component.Projectile
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var targets []combatTarget
	ecs.ForEach2(w, component.EnemyTagComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, _ *component.EnemyTag, h *component.Health) {
		box, ok := hurtboxRect(w, e)
		if !ok {
			return
		}
		seq := 0
		if en, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
			seq = en.Seq
		}
		targets = append(targets, combatTarget{entity: e, box: box, health: h, seq: seq})
	})
	// Overlapping enemies are checked in spawn order.
	sort.SliceStable(targets, func(i, j int) bool {
		if targets[i].seq != targets[j].seq {
			return targets[i].seq < targets[j].seq
		}
		return uint64(targets[i].entity) < uint64(targets[j].entity)
	})
	if len(targets) == 0 {
		return
	}

	var shots []combatShot
	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(e ecs.Entity, p *component.Projectile) {
		shots = append(shots, combatShot{entity: e, projectile: p})
	})
	sort.SliceStable(shots, func(i, j int) bool {
		if shots[i].projectile.Order != shots[j].projectile.Order {
			return shots[i].projectile.Order < shots[j].projectile.Order
		}
		return uint64(shots[i].entity) < uint64(shots[j].entity)
	})

	defeated := make([]ecs.Entity, 0)
	seen := make(map[ecs.Entity]bool)
	for _, shot := range shots {
		box, ok := hitboxRect(w, shot.entity)
		if !ok {
			continue
		}
		for _, target := range targets {
			if !box.Intersects(target.box) {
				continue
			}
			target.health.Current -= shot.projectile.Damage
			s.flash(w, target.entity)
			if target.health.Current <= 0 && !seen[target.entity] {
				seen[target.entity] = true
				defeated = append(defeated, target.entity)
			}
			ecs.DestroyEntity(w, shot.entity)
			break
		}
	}

	for _, e := range defeated {
		name := ""
		if en, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
			name = en.Name
		}
		ecs.DestroyEntity(w, e)
		w.Events().Push(ecs.Event{Kind: ecs.EventEnemyDefeated, Entity: e, Data: name})
		log.Debug("enemy defeated", "entity", e, "name", name)
	}
}

func (s *CombatSystem) flash(w *ecs.World, e ecs.Entity) {
	if s.settings.FlashFrames <= 0 {
		return
	}
	_ = ecs.Add(w, e, component.BlinkComponent.Kind(), &component.Blink{
		Frames:   s.settings.FlashFrames,
		Interval: s.settings.FlashInterval,
	})
}

// ContactDamageSystem hurts the player while it touches an enemy.
type ContactDamageSystem struct{}

func NewContactDamageSystem() *ContactDamageSystem { return &ContactDamageSystem{} }

func (s *ContactDamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok || ecs.Has(w, player, component.InvulnerableComponent.Kind()) {
		return
	}
	box, ok := hurtboxRect(w, player)
	if !ok {
		return
	}

	hit := false
	ecs.ForEach(w, component.EnemyTagComponent.Kind(), func(e ecs.Entity, _ *component.EnemyTag) {
		if hit {
			return
		}
		if enemyBox, ok := hurtboxRect(w, e); ok && box.Intersects(enemyBox) {
			hit = true
		}
	})
	if hit {
		DamagePlayer(w, player)
	}
}
