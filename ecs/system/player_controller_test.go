package system

import (
	"errors"
	"testing"

	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

type spawnCall struct {
	prefab     string
	x, y       float64
	facingLeft bool
}

func recordingSpawner(calls *[]spawnCall, err error) ProjectileSpawner {
	return func(w *ecs.World, prefab string, x, y float64, facingLeft bool) (ecs.Entity, error) {
		*calls = append(*calls, spawnCall{prefab: prefab, x: x, y: y, facingLeft: facingLeft})
		if err != nil {
			return 0, err
		}
		return ecs.CreateEntity(w), nil
	}
}

func setInput(t *testing.T, w *ecs.World, e ecs.Entity, in component.Input) {
	t.Helper()
	cur, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		t.Fatal("input missing")
	}
	*cur = in
}

func TestPerformAttack(t *testing.T) {
	w := ecs.NewWorld()
	p := newTestPlayer(t, w, 100, 200)
	s, _ := ecs.Get(w, p, component.SpriteComponent.Kind())
	s.FacingLeft = true

	var calls []spawnCall
	ctrl := NewPlayerControllerSystemWithSpawner(recordingSpawner(&calls, nil))

	if !ctrl.PerformAttack(w, p) {
		t.Fatal("first attack refused")
	}
	if ctrl.PerformAttack(w, p) {
		t.Fatal("attack accepted while attacking")
	}
	ab, _ := ecs.Get(w, p, component.AbilitiesComponent.Kind())
	ab.Attacking = false
	ab.AttackOnCooldown = true
	if ctrl.PerformAttack(w, p) {
		t.Fatal("attack accepted on cooldown")
	}

	want := []spawnCall{{prefab: "archer_arrow.yaml", x: 100, y: 200, facingLeft: true}}
	if len(calls) != 1 || calls[0] != want[0] {
		t.Fatalf("spawn calls = %+v, want %+v", calls, want)
	}
}

func TestPerformAttackSpawnErrorStillAttacks(t *testing.T) {
	w := ecs.NewWorld()
	p := newTestPlayer(t, w, 0, 0)
	var calls []spawnCall
	ctrl := NewPlayerControllerSystemWithSpawner(recordingSpawner(&calls, errors.New("missing prefab")))

	if !ctrl.PerformAttack(w, p) {
		t.Fatal("attack should start even when the projectile cannot be built")
	}
	ab, _ := ecs.Get(w, p, component.AbilitiesComponent.Kind())
	if !ab.Attacking {
		t.Fatal("attacking not set")
	}
}

func TestControllerAbilities(t *testing.T) {
	tests := []struct {
		name       string
		slot       int
		grounded   bool
		facingLeft bool
		climbable  bool
		check      func(*testing.T, *component.Abilities, *component.PhysicsBody)
	}{
		{
			name: "archer dashes right",
			slot: 0,
			check: func(t *testing.T, ab *component.Abilities, _ *component.PhysicsBody) {
				if !ab.Dashing || ab.DashDirection != 1 || !ab.DashOnCooldown {
					t.Fatalf("dash state = %+v", *ab)
				}
			},
		},
		{
			name:       "archer dashes left",
			slot:       0,
			facingLeft: true,
			check: func(t *testing.T, ab *component.Abilities, _ *component.PhysicsBody) {
				if !ab.Dashing || ab.DashDirection != -1 {
					t.Fatalf("dash state = %+v", *ab)
				}
			},
		},
		{
			name:     "wizard floats from the ground",
			slot:     2,
			grounded: true,
			check: func(t *testing.T, ab *component.Abilities, _ *component.PhysicsBody) {
				if !ab.Floating || ab.FloatTimer != 0 {
					t.Fatalf("float state = %+v", *ab)
				}
			},
		},
		{
			name: "wizard cannot float in the air",
			slot: 2,
			check: func(t *testing.T, ab *component.Abilities, _ *component.PhysicsBody) {
				if ab.Floating {
					t.Fatal("floated while airborne")
				}
			},
		},
		{
			name:      "knight climbs a vine",
			slot:      1,
			climbable: true,
			check: func(t *testing.T, ab *component.Abilities, body *component.PhysicsBody) {
				if !ab.Climbing {
					t.Fatal("not climbing")
				}
				if body.VY != -testTuning.ClimbSpeed {
					t.Fatalf("VY = %v, want %v", body.VY, -testTuning.ClimbSpeed)
				}
			},
		},
		{
			name: "knight without a vine does nothing",
			slot: 1,
			check: func(t *testing.T, ab *component.Abilities, _ *component.PhysicsBody) {
				if ab.Climbing || ab.Dashing || ab.Floating {
					t.Fatalf("unexpected ability: %+v", *ab)
				}
			},
		},
		{
			name:      "archer ignores vines",
			slot:      0,
			climbable: true,
			check: func(t *testing.T, ab *component.Abilities, _ *component.PhysicsBody) {
				if ab.Climbing || !ab.Dashing {
					t.Fatalf("ability state = %+v", *ab)
				}
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			p := newTestPlayer(t, w, 100, 100)
			roster, _ := ecs.Get(w, p, component.RosterComponent.Kind())
			roster.Current = tc.slot
			setGrounded(t, w, p, tc.grounded)
			s, _ := ecs.Get(w, p, component.SpriteComponent.Kind())
			s.FacingLeft = tc.facingLeft
			if tc.climbable {
				addVolume(t, w, component.VolumeClimbable, 90, 0, 32, 300)
			}
			setInput(t, w, p, component.Input{AbilityPressed: true, SwitchTo: -1})

			var calls []spawnCall
			NewPlayerControllerSystemWithSpawner(recordingSpawner(&calls, nil)).Update(w)

			ab, _ := ecs.Get(w, p, component.AbilitiesComponent.Kind())
			body, _ := ecs.Get(w, p, component.PhysicsBodyComponent.Kind())
			tc.check(t, ab, body)
		})
	}
}

func TestControllerJumpAndMove(t *testing.T) {
	tests := []struct {
		name     string
		grounded bool
		climbing bool
		input    component.Input
		wantVX   float64
		wantVY   float64
	}{
		{name: "walk right", input: component.Input{MoveX: 1, SwitchTo: -1}, wantVX: 3},
		{name: "walk left", input: component.Input{MoveX: -1, SwitchTo: -1}, wantVX: -3},
		{name: "jump from ground", grounded: true, input: component.Input{JumpPressed: true, SwitchTo: -1}, wantVY: -11},
		{name: "no air jump", input: component.Input{JumpPressed: true, SwitchTo: -1}, wantVY: 0},
		{name: "jump off a climb", climbing: true, input: component.Input{JumpPressed: true, SwitchTo: -1}, wantVY: -11},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			p := newTestPlayer(t, w, 100, 100)
			setGrounded(t, w, p, tc.grounded)
			ab, _ := ecs.Get(w, p, component.AbilitiesComponent.Kind())
			ab.Climbing = tc.climbing
			setInput(t, w, p, tc.input)

			var calls []spawnCall
			NewPlayerControllerSystemWithSpawner(recordingSpawner(&calls, nil)).Update(w)

			body, _ := ecs.Get(w, p, component.PhysicsBodyComponent.Kind())
			if body.VX != tc.wantVX || body.VY != tc.wantVY {
				t.Fatalf("velocity = (%v, %v), want (%v, %v)", body.VX, body.VY, tc.wantVX, tc.wantVY)
			}
			if tc.climbing && ab.Climbing {
				t.Fatal("jump should end the climb")
			}
		})
	}
}

func TestControllerSwitchAndReset(t *testing.T) {
	w := ecs.NewWorld()
	p := newTestPlayer(t, w, 400, 400)
	setInput(t, w, p, component.Input{SwitchTo: 2, ResetPressed: true})

	var calls []spawnCall
	NewPlayerControllerSystemWithSpawner(recordingSpawner(&calls, nil)).Update(w)

	roster, _ := ecs.Get(w, p, component.RosterComponent.Kind())
	if roster.Current != 2 {
		t.Fatalf("slot = %d, want 2", roster.Current)
	}
	tr, _ := ecs.Get(w, p, component.TransformComponent.Kind())
	if tr.X != 50 || tr.Y != 60 {
		t.Fatalf("position = (%v, %v), want spawn", tr.X, tr.Y)
	}
}
