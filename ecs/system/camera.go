package system

import (
	"github.com/milk9111/rpgplatformer/common"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// CameraSystem centres the camera on the player. Smoothness 1 snaps; smaller
// values ease toward the target each frame.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	targetTransform, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())

	k := cam.Smoothness
	if k <= 0 || k > 1 {
		k = 1
	}
	camTransform.X = common.Lerp(camTransform.X, targetTransform.X, k)
	camTransform.Y = common.Lerp(camTransform.Y, targetTransform.Y, k)
}

// SnapCamera puts the camera straight on the player, used after a level load.
func SnapCamera(w *ecs.World) {
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	saved := cam.Smoothness
	cam.Smoothness = 1
	NewCameraSystem().Update(w)
	cam.Smoothness = saved
}

// CameraView returns the world-space rectangle the camera shows.
func CameraView(w *ecs.World) (common.Rect, bool) {
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return common.RectAround(t.X, t.Y, cam.ViewWidth/zoom, cam.ViewHeight/zoom), true
}

// CameraTransform returns the top-left of the view in world space and the
// zoom, which is what drawing code needs.
func CameraTransform(w *ecs.World) (float64, float64, float64) {
	view, ok := CameraView(w)
	if !ok {
		return 0, 0, 1
	}
	zoom := 1.0
	if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
			zoom = cam.Zoom
		}
	}
	return view.X, view.Y, zoom
}
