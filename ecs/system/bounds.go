package system

import (
	"github.com/milk9111/rpgplatformer/common"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// spriteSize returns the drawn size of an entity's sprite, scale included.
func spriteSize(w *ecs.World, e ecs.Entity) (float64, float64, bool) {
	s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok || s.Image == nil {
		return 0, 0, false
	}
	imgW := float64(s.Image.Bounds().Dx())
	imgH := float64(s.Image.Bounds().Dy())
	if s.UseSource {
		imgW = float64(s.Source.Dx())
		imgH = float64(s.Source.Dy())
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		if t.ScaleX != 0 {
			imgW *= t.ScaleX
		}
		if t.ScaleY != 0 {
			imgH *= t.ScaleY
		}
	}
	return imgW, imgH, true
}

// boxRect centres a box on the transform. A zero size falls back to the
// physics body and then to the sprite.
func boxRect(w *ecs.World, e ecs.Entity, width, height, offsetX, offsetY float64) (common.Rect, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	if width <= 0 || height <= 0 {
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Width > 0 && body.Height > 0 {
			width, height = body.Width, body.Height
		} else if sw, sh, ok := spriteSize(w, e); ok {
			width, height = sw, sh
		} else {
			return common.Rect{}, false
		}
	}
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && s.FacingLeft {
		offsetX = -offsetX
	}
	return common.RectAround(t.X+offsetX, t.Y+offsetY, width, height), true
}

func hurtboxRect(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	if hb, ok := ecs.Get(w, e, component.HurtboxComponent.Kind()); ok {
		return boxRect(w, e, hb.Width, hb.Height, hb.OffsetX, hb.OffsetY)
	}
	return boxRect(w, e, 0, 0, 0, 0)
}

func hitboxRect(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	if hb, ok := ecs.Get(w, e, component.HitboxComponent.Kind()); ok {
		return boxRect(w, e, hb.Width, hb.Height, hb.OffsetX, hb.OffsetY)
	}
	return boxRect(w, e, 0, 0, 0, 0)
}

func volumeRect(v *component.Volume) common.Rect {
	return common.Rect{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// overlappingVolumes returns every volume of kind that intersects r.
func overlappingVolumes(w *ecs.World, r common.Rect, kind component.VolumeKind) []*component.Volume {
	var out []*component.Volume
	ecs.ForEach(w, component.VolumeComponent.Kind(), func(_ ecs.Entity, v *component.Volume) {
		if v.Kind == kind && r.Intersects(volumeRect(v)) {
			out = append(out, v)
		}
	})
	return out
}

func touchesVolume(w *ecs.World, r common.Rect, kind component.VolumeKind) bool {
	return len(overlappingVolumes(w, r, kind)) > 0
}

// pointInVolume reports whether (x, y) lies inside any volume of kind.
func pointInVolume(w *ecs.World, x, y float64, kind component.VolumeKind) bool {
	found := false
	ecs.ForEach(w, component.VolumeComponent.Kind(), func(_ ecs.Entity, v *component.Volume) {
		if !found && v.Kind == kind && volumeRect(v).Contains(x, y) {
			found = true
		}
	})
	return found
}

// touchingClimbable is true only for a character that can climb.
func touchingClimbable(w *ecs.World, player ecs.Entity) bool {
	roster, ok := ecs.Get(w, player, component.RosterComponent.Kind())
	if !ok || !roster.Can(component.AbilityClimb) {
		return false
	}
	r, ok := hurtboxRect(w, player)
	if !ok {
		return false
	}
	return touchesVolume(w, r, component.VolumeClimbable)
}

func grounded(w *ecs.World, player ecs.Entity) bool {
	pc, ok := ecs.Get(w, player, component.PlayerCollisionComponent.Kind())
	return ok && (pc.Grounded || pc.GroundGrace > 0)
}
