package system

import (
	"testing"

	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

var testTuning = component.Player{
	MoveSpeed:            3,
	JumpSpeed:            11,
	DashSpeed:            15,
	FloatSpeed:           2.5,
	ClimbSpeed:           3,
	FloatFrames:          120,
	DashFrames:           30,
	DashCooldownFrames:   120,
	AttackFrames:         18,
	AttackCooldownFrames: 30,
	InvulnerableFrames:   60,
	BlinkInterval:        6,
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

// newTestPlayer builds a player without images at (x, y) whose spawn is
// (spawnX, spawnY). The roster is archer, knight, wizard with archer active.
func newTestPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{SwitchTo: -1})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 24, Height: 40, Mass: 1})
	mustAdd(t, w, e, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{})
	mustAdd(t, w, e, component.HurtboxComponent.Kind(), &component.Hurtbox{Width: 24, Height: 40})
	mustAdd(t, w, e, component.AbilitiesComponent.Kind(), &component.Abilities{})
	mustAdd(t, w, e, component.AnimationComponent.Kind(), &component.Animation{StepDistance: 20})
	tuning := testTuning
	mustAdd(t, w, e, component.PlayerComponent.Kind(), &tuning)
	mustAdd(t, w, e, component.HealthComponent.Kind(), &component.Health{Current: 3, Max: 3})
	mustAdd(t, w, e, component.SpawnPointComponent.Kind(), &component.SpawnPoint{X: 50, Y: 60, Activated: map[string]bool{}})
	mustAdd(t, w, e, component.RosterComponent.Kind(), &component.Roster{Characters: []component.Character{
		{Name: "archer", Ability: component.AbilityDash, Attack: "archer_arrow.yaml"},
		{Name: "knight", Ability: component.AbilityClimb, Attack: "knight_slash.yaml"},
		{Name: "wizard", Ability: component.AbilityFloat, Attack: "wizard_fire.yaml"},
	}})
	return e
}

func setGrounded(t *testing.T, w *ecs.World, e ecs.Entity, grounded bool) {
	t.Helper()
	pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())
	if !ok {
		t.Fatal("player collision missing")
	}
	pc.Grounded = grounded
	pc.GroundGrace = 0
}

func addVolume(t *testing.T, w *ecs.World, kind component.VolumeKind, x, y, width, height float64) *component.Volume {
	t.Helper()
	v := &component.Volume{Kind: kind, X: x, Y: y, Width: width, Height: height}
	mustAdd(t, w, ecs.CreateEntity(w), component.VolumeComponent.Kind(), v)
	return v
}

func addGameState(t *testing.T, w *ecs.World, index, count int) *component.GameState {
	t.Helper()
	state := &component.GameState{LevelIndex: index, LevelCount: count, LevelName: "test"}
	mustAdd(t, w, ecs.CreateEntity(w), component.GameStateComponent.Kind(), state)
	return state
}

func eventKinds(w *ecs.World) []ecs.EventKind {
	var kinds []ecs.EventKind
	for _, evt := range w.Events().Drain() {
		kinds = append(kinds, evt.Kind)
	}
	return kinds
}

func countEvents(kinds []ecs.EventKind, kind ecs.EventKind) int {
	n := 0
	for _, k := range kinds {
		if k == kind {
			n++
		}
	}
	return n
}
