package system

import (
	"errors"
	"testing"

	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
	"github.com/milk9111/rpgplatformer/prefabs"
)

func TestBouncePatrol(t *testing.T) {
	base := component.Enemy{Left: 0, Right: 100, Top: 0, Bottom: 50, SpeedX: 2, SpeedY: 1}
	tests := []struct {
		name           string
		x, y           float64
		vx, vy         float64
		wantVX, wantVY float64
	}{
		{name: "inside keeps going", x: 50, y: 25, vx: 2, vy: -1, wantVX: 2, wantVY: -1},
		{name: "right edge turns", x: 100, y: 25, vx: 2, vy: 0, wantVX: -2, wantVY: 0},
		{name: "left edge turns", x: -1, y: 25, vx: -2, vy: 0, wantVX: 2, wantVY: 0},
		{name: "past right moving back stays", x: 101, y: 25, vx: -2, vy: 0, wantVX: -2, wantVY: 0},
		{name: "top edge turns down", x: 50, y: 0, vx: 0, vy: -1, wantVX: 0, wantVY: 1},
		{name: "bottom edge turns up", x: 50, y: 51, vx: 0, vy: 1, wantVX: 0, wantVY: -1},
		{name: "corner turns both", x: 100, y: 0, vx: 2, vy: -1, wantVX: -2, wantVY: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			en := base
			en.VX, en.VY = tc.vx, tc.vy
			BouncePatrol(&en, tc.x, tc.y)
			if en.VX != tc.wantVX || en.VY != tc.wantVY {
				t.Fatalf("velocity = (%v, %v), want (%v, %v)", en.VX, en.VY, tc.wantVX, tc.wantVY)
			}
		})
	}
}

func addPatroller(t *testing.T, w *ecs.World, x, y float64, script string) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.EnemyComponent.Kind(), &component.Enemy{
		Name: "ghost", Left: 50, Right: 150, Top: 80, Bottom: 120,
		SpeedX: 1.5, SpeedY: 0.5, VX: 1.5, VY: -0.5,
	})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	if script != "" {
		mustAdd(t, w, e, component.PatrolScriptComponent.Kind(), &component.PatrolScript{Path: script})
	}
	return e
}

func TestPatrolScriptMatchesBuiltIn(t *testing.T) {
	w := ecs.NewWorld()
	native := addPatroller(t, w, 100, 100, "")
	scripted := addPatroller(t, w, 100, 100, "patrol.tengo")

	sys := NewEnemyPatrolSystemWithLoader(prefabs.LoadScript)
	for i := 0; i < 400; i++ {
		sys.Update(w)
	}

	if s, _ := ecs.Get(w, scripted, component.PatrolScriptComponent.Kind()); s.Failed {
		t.Fatal("embedded patrol script failed")
	}
	a, _ := ecs.Get(w, native, component.TransformComponent.Kind())
	b, _ := ecs.Get(w, scripted, component.TransformComponent.Kind())
	if a.X != b.X || a.Y != b.Y {
		t.Fatalf("scripted (%v, %v) drifted from built-in (%v, %v)", b.X, b.Y, a.X, a.Y)
	}
	if a.X < 50-1.5 || a.X > 150+1.5 || a.Y < 80-0.5 || a.Y > 120+0.5 {
		t.Fatalf("enemy left its patrol box: (%v, %v)", a.X, a.Y)
	}
}

func TestPatrolScriptSetsVelocity(t *testing.T) {
	src := []byte(`update := func(engine, state) { engine.set_velocity(5, 0) }`)
	w := ecs.NewWorld()
	e := addPatroller(t, w, 100, 100, "fast.tengo")

	sys := NewEnemyPatrolSystemWithLoader(func(string) ([]byte, error) { return src, nil })
	sys.Update(w)
	sys.Update(w)

	en, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
	if en.VX != 5 || en.VY != 0 {
		t.Fatalf("velocity = (%v, %v), want (5, 0)", en.VX, en.VY)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != 106.5 {
		t.Fatalf("x = %v, want 106.5", tr.X)
	}
}

func TestPatrolScriptFallsBack(t *testing.T) {
	tests := []struct {
		name string
		load ScriptLoader
	}{
		{name: "missing", load: func(string) ([]byte, error) { return nil, errors.New("not found") }},
		{name: "syntax error", load: func(string) ([]byte, error) { return []byte("update := func(engine, state) {"), nil }},
		{name: "runtime error", load: func(string) ([]byte, error) {
			return []byte(`update := func(engine, state) { engine.set_velocity(1) }`), nil
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := addPatroller(t, w, 150, 100, "broken.tengo")

			NewEnemyPatrolSystemWithLoader(tc.load).Update(w)

			script, _ := ecs.Get(w, e, component.PatrolScriptComponent.Kind())
			if !script.Failed {
				t.Fatal("script should be marked failed")
			}
			en, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
			if en.VX != -1.5 {
				t.Fatalf("built-in patrol should turn at the right edge, VX = %v", en.VX)
			}
		})
	}
}
