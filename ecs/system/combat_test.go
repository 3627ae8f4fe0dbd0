package system

import (
	"testing"

	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

func addEnemy(t *testing.T, w *ecs.World, name string, x, y float64, hp int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	mustAdd(t, w, e, component.EnemyComponent.Kind(), &component.Enemy{Name: name})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.HurtboxComponent.Kind(), &component.Hurtbox{Width: 32, Height: 38})
	mustAdd(t, w, e, component.HealthComponent.Kind(), &component.Health{Current: hp, Max: hp})
	return e
}

func setSeq(t *testing.T, w *ecs.World, e ecs.Entity, seq int) {
	t.Helper()
	en, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		t.Fatalf("entity %d has no enemy component", e)
	}
	en.Seq = seq
}

func addShot(t *testing.T, w *ecs.World, kind component.ProjectileKind, order, damage int, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.HitboxComponent.Kind(), &component.Hitbox{Width: 16, Height: 16})
	mustAdd(t, w, e, component.ProjectileComponent.Kind(), &component.Projectile{Kind: kind, Order: order, Damage: damage})
	return e
}

func TestCombatResolution(t *testing.T) {
	t.Run("shot damages and is consumed", func(t *testing.T) {
		w := ecs.NewWorld()
		enemy := addEnemy(t, w, "ghost", 100, 100, 3)
		shot := addShot(t, w, component.ProjectileArrow, 1, 1, 105, 100)

		NewCombatSystem(CombatSettings{FlashFrames: 18, FlashInterval: 3}).Update(w)

		h, _ := ecs.Get(w, enemy, component.HealthComponent.Kind())
		if h.Current != 2 {
			t.Fatalf("enemy hp = %d, want 2", h.Current)
		}
		if ecs.IsAlive(w, shot) {
			t.Fatal("projectile survived its hit")
		}
		if b, ok := ecs.Get(w, enemy, component.BlinkComponent.Kind()); !ok || b.Frames != 18 {
			t.Fatalf("hit flash = %+v, %v", b, ok)
		}
	})

	t.Run("miss leaves everything alone", func(t *testing.T) {
		w := ecs.NewWorld()
		enemy := addEnemy(t, w, "ghost", 100, 100, 3)
		shot := addShot(t, w, component.ProjectileArrow, 1, 1, 300, 100)

		NewCombatSystem(CombatSettings{}).Update(w)

		h, _ := ecs.Get(w, enemy, component.HealthComponent.Kind())
		if h.Current != 3 || !ecs.IsAlive(w, shot) {
			t.Fatalf("hp = %d, shot alive = %v", h.Current, ecs.IsAlive(w, shot))
		}
	})

	t.Run("one shot hits one enemy", func(t *testing.T) {
		w := ecs.NewWorld()
		first := addEnemy(t, w, "a", 100, 100, 3)
		second := addEnemy(t, w, "b", 104, 100, 3)
		addShot(t, w, component.ProjectileFire, 2, 2, 102, 100)

		NewCombatSystem(CombatSettings{}).Update(w)

		h1, _ := ecs.Get(w, first, component.HealthComponent.Kind())
		h2, _ := ecs.Get(w, second, component.HealthComponent.Kind())
		if h1.Current+h2.Current != 4 {
			t.Fatalf("total hp = %d, want 4 (one hit of 2)", h1.Current+h2.Current)
		}
	})

	t.Run("earlier spawn is hit first", func(t *testing.T) {
		w := ecs.NewWorld()
		late := addEnemy(t, w, "late", 100, 100, 3)
		early := addEnemy(t, w, "early", 104, 100, 3)
		setSeq(t, w, late, 5)
		setSeq(t, w, early, 1)
		addShot(t, w, component.ProjectileArrow, 1, 1, 102, 100)

		NewCombatSystem(CombatSettings{}).Update(w)

		hLate, _ := ecs.Get(w, late, component.HealthComponent.Kind())
		hEarly, _ := ecs.Get(w, early, component.HealthComponent.Kind())
		if hEarly.Current != 2 || hLate.Current != 3 {
			t.Fatalf("early hp = %d, late hp = %d; want 2 and 3", hEarly.Current, hLate.Current)
		}
	})

	t.Run("defeat is reported once", func(t *testing.T) {
		w := ecs.NewWorld()
		enemy := addEnemy(t, w, "ghost", 100, 100, 3)
		fire := addShot(t, w, component.ProjectileFire, 2, 2, 100, 100)
		slash := addShot(t, w, component.ProjectileSlash, 0, 3, 100, 100)

		NewCombatSystem(CombatSettings{}).Update(w)

		if ecs.IsAlive(w, enemy) {
			t.Fatal("enemy should be defeated")
		}
		if ecs.IsAlive(w, slash) || ecs.IsAlive(w, fire) {
			t.Fatal("both projectiles should be consumed")
		}
		evts := w.Events().Drain()
		if len(evts) != 1 || evts[0].Kind != ecs.EventEnemyDefeated || evts[0].Data != "ghost" {
			t.Fatalf("events = %+v", evts)
		}
	})
}

func TestContactDamage(t *testing.T) {
	tests := []struct {
		name       string
		enemyX     float64
		wantHealth int
	}{
		{name: "touching", enemyX: 110, wantHealth: 2},
		{name: "apart", enemyX: 300, wantHealth: 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			p := newTestPlayer(t, w, 100, 100)
			addEnemy(t, w, "ghost", tc.enemyX, 100, 3)

			sys := NewContactDamageSystem()
			sys.Update(w)
			sys.Update(w)

			h, _ := ecs.Get(w, p, component.HealthComponent.Kind())
			if h.Current != tc.wantHealth {
				t.Fatalf("health = %d, want %d", h.Current, tc.wantHealth)
			}
		})
	}
}

func TestHazardDamage(t *testing.T) {
	w := ecs.NewWorld()
	p := newTestPlayer(t, w, 100, 100)
	addVolume(t, w, component.VolumeDanger, 80, 110, 64, 32)

	NewHazardSystem().Update(w)

	h, _ := ecs.Get(w, p, component.HealthComponent.Kind())
	if h.Current != 2 {
		t.Fatalf("health = %d, want 2", h.Current)
	}
	if !ecs.Has(w, p, component.InvulnerableComponent.Kind()) {
		t.Fatal("hazard hit should grant invulnerability")
	}
}
