package system

import (
	"testing"

	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

func TestBlinkSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	sprite := &component.Sprite{}
	mustAdd(t, w, e, component.SpriteComponent.Kind(), sprite)
	mustAdd(t, w, e, component.BlinkComponent.Kind(), &component.Blink{Frames: 6, Interval: 2})

	sys := NewBlinkSystem()
	var got []bool
	for i := 0; i < 6; i++ {
		sys.Update(w)
		got = append(got, sprite.Dim)
	}
	want := []bool{false, true, true, false, false, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dim sequence = %v, want %v", got, want)
		}
	}
	if ecs.Has(w, e, component.BlinkComponent.Kind()) {
		t.Fatal("blink should be removed when it runs out")
	}
}

func TestTTLSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TTLComponent.Kind(), &component.TTL{Frames: 3})

	sys := NewTTLSystem()
	for i := 0; i < 2; i++ {
		sys.Update(w)
		if !ecs.IsAlive(w, e) {
			t.Fatalf("destroyed after %d frames", i+1)
		}
	}
	sys.Update(w)
	if ecs.IsAlive(w, e) {
		t.Fatal("entity outlived its ttl")
	}
}

func TestFlickerSystemWithoutFrames(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	f := &component.Flicker{Interval: 2}
	mustAdd(t, w, e, component.FlickerComponent.Kind(), f)

	NewFlickerSystem().Update(w)

	if f.Timer != 0 || f.Index != 0 {
		t.Fatalf("empty flicker advanced: %+v", *f)
	}
}

func TestProjectileSystem(t *testing.T) {
	tests := []struct {
		name      string
		p         component.Projectile
		x         float64
		wantAlive bool
		wantX     float64
	}{
		{name: "moves", p: component.Projectile{VX: 8}, x: 100, wantAlive: true, wantX: 108},
		{name: "stops on platform", p: component.Projectile{VX: 8, StopOnPlatform: true}, x: 290, wantAlive: false},
		{name: "passes platforms when allowed", p: component.Projectile{VX: 8}, x: 290, wantAlive: true, wantX: 298},
		{name: "culled outside view", p: component.Projectile{VX: 8, CullMargin: 200}, x: 900, wantAlive: false},
		{name: "kept inside margin", p: component.Projectile{VX: 8, CullMargin: 200}, x: 500, wantAlive: true, wantX: 508},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			cam := ecs.CreateEntity(w)
			mustAdd(t, w, cam, component.CameraComponent.Kind(), &component.Camera{Zoom: 1, Smoothness: 1, ViewWidth: 400, ViewHeight: 300})
			mustAdd(t, w, cam, component.TransformComponent.Kind(), &component.Transform{X: 200, Y: 150})
			addVolume(t, w, component.VolumePlatform, 300, 0, 32, 300)

			e := ecs.CreateEntity(w)
			p := tc.p
			mustAdd(t, w, e, component.ProjectileComponent.Kind(), &p)
			mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: tc.x, Y: 150, ScaleX: 1, ScaleY: 1})
			mustAdd(t, w, e, component.HitboxComponent.Kind(), &component.Hitbox{Width: 10, Height: 4})

			NewProjectileSystem().Update(w)

			if ecs.IsAlive(w, e) != tc.wantAlive {
				t.Fatalf("alive = %v, want %v", ecs.IsAlive(w, e), tc.wantAlive)
			}
			if tc.wantAlive {
				tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
				if tr.X != tc.wantX {
					t.Fatalf("x = %v, want %v", tr.X, tc.wantX)
				}
			}
		})
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	w := ecs.NewWorld()
	newTestPlayer(t, w, 640, 200)
	cam := ecs.CreateEntity(w)
	mustAdd(t, w, cam, component.CameraComponent.Kind(), &component.Camera{Zoom: 2, Smoothness: 0.5, ViewWidth: 400, ViewHeight: 300})
	mustAdd(t, w, cam, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 0})

	NewCameraSystem().Update(w)
	tr, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	if tr.X != 320 || tr.Y != 100 {
		t.Fatalf("eased camera = (%v, %v), want (320, 100)", tr.X, tr.Y)
	}

	SnapCamera(w)
	if tr.X != 640 || tr.Y != 200 {
		t.Fatalf("snapped camera = (%v, %v), want (640, 200)", tr.X, tr.Y)
	}

	view, ok := CameraView(w)
	if !ok {
		t.Fatal("no camera view")
	}
	if view.Width != 200 || view.Height != 150 || view.X != 540 || view.Y != 125 {
		t.Fatalf("view = %+v", view)
	}
}
