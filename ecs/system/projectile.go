package system

import (
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// ProjectileSystem moves projectiles and removes the ones that hit a
// platform or travel too far outside the view.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem { return &ProjectileSystem{} }

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	view, hasView := CameraView(w)

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, t *component.Transform) {
		t.X += p.VX
		t.Y += p.VY

		if p.StopOnPlatform {
			if box, ok := hitboxRect(w, e); ok && touchesVolume(w, box, component.VolumePlatform) {
				ecs.DestroyEntity(w, e)
				return
			}
		}

		if p.CullMargin > 0 && hasView && !view.Expand(p.CullMargin).Contains(t.X, t.Y) {
			ecs.DestroyEntity(w, e)
		}
	})
}
