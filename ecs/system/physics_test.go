package system

import (
	"math"
	"testing"

	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

func newTestPhysics() *PhysicsSystem {
	return NewPhysicsSystem(PhysicsSettings{Gravity: 0.5, Iterations: 20, GroundGraceFrames: 2})
}

// addPlatform adds a static box whose top edge is at y = top.
func addPlatform(t *testing.T, w *ecs.World, centerX, top, width, height float64) {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: centerX, Y: top + height/2, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Height: height, Static: true, Friction: 1})
}

func stepPhysics(ps *PhysicsSystem, w *ecs.World, n int) {
	for i := 0; i < n; i++ {
		ps.Update(w)
	}
}

func TestPhysicsLanding(t *testing.T) {
	w := ecs.NewWorld()
	addPlatform(t, w, 100, 90, 200, 20)
	p := newTestPlayer(t, w, 100, 30)

	ps := newTestPhysics()
	stepPhysics(ps, w, 120)

	tr, _ := ecs.Get(w, p, component.TransformComponent.Kind())
	// The 40 px tall body rests with its feet on the platform top.
	if math.Abs(tr.Y-70) > 1 {
		t.Fatalf("y = %v, want about 70", tr.Y)
	}
	if math.Abs(tr.X-100) > 0.5 {
		t.Fatalf("x drifted to %v", tr.X)
	}
	pc, _ := ecs.Get(w, p, component.PlayerCollisionComponent.Kind())
	if !pc.Grounded {
		t.Fatal("player on a platform should be grounded")
	}
}

func TestPhysicsGravity(t *testing.T) {
	tests := []struct {
		name     string
		scale    *float64
		wantFall bool
	}{
		{name: "falls through the open bottom", wantFall: true},
		{name: "zero gravity scale hangs in place", scale: new(float64)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			mustAdd(t, w, ecs.CreateEntity(w), component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: 400, Height: 200})
			p := newTestPlayer(t, w, 100, 150)
			if tc.scale != nil {
				mustAdd(t, w, p, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: *tc.scale})
			}

			stepPhysics(newTestPhysics(), w, 60)

			tr, _ := ecs.Get(w, p, component.TransformComponent.Kind())
			if tc.wantFall {
				if tr.Y <= 200 {
					t.Fatalf("y = %v, want below the level bottom (200)", tr.Y)
				}
				return
			}
			if math.Abs(tr.Y-150) > 0.001 {
				t.Fatalf("y = %v, want 150", tr.Y)
			}
			pc, _ := ecs.Get(w, p, component.PlayerCollisionComponent.Kind())
			if pc.Grounded {
				t.Fatal("floating player should not be grounded")
			}
		})
	}
}

func TestTeleport(t *testing.T) {
	w := ecs.NewWorld()
	p := newTestPlayer(t, w, 100, 30)
	ps := newTestPhysics()
	stepPhysics(ps, w, 10)

	body, _ := ecs.Get(w, p, component.PhysicsBodyComponent.Kind())
	if body.VY <= 0 {
		t.Fatalf("vy = %v, want falling before teleport", body.VY)
	}

	Teleport(w, p, 10, 20)

	tr, _ := ecs.Get(w, p, component.TransformComponent.Kind())
	if tr.X != 10 || tr.Y != 20 {
		t.Fatalf("transform = (%v, %v), want (10, 20)", tr.X, tr.Y)
	}
	if body.VX != 0 || body.VY != 0 {
		t.Fatalf("velocity = (%v, %v), want zero", body.VX, body.VY)
	}
	pos := body.Body.Position()
	if pos.X != 10 || pos.Y != 20 {
		t.Fatalf("body position = %+v, want (10, 20)", pos)
	}
	if v := body.Body.Velocity(); v.X != 0 || v.Y != 0 {
		t.Fatalf("body velocity = %+v, want zero", v)
	}
}
