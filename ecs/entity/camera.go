package entity

import (
	"fmt"

	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

const cameraPrefab = "camera.yaml"

// NewCameraAt builds the camera centred on (x, y) with the given view size in
// screen pixels. A positive zoom overrides the prefab's.
func NewCameraAt(w *ecs.World, x, y, viewW, viewH, zoom float64) (ecs.Entity, error) {
	camera, err := BuildEntity(w, cameraPrefab)
	if err != nil {
		return 0, err
	}
	cam, ok := ecs.Get(w, camera, component.CameraComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, camera)
		return 0, fmt.Errorf("camera: prefab %q has no camera component", cameraPrefab)
	}
	cam.ViewWidth = viewW
	cam.ViewHeight = viewH
	if zoom > 0 {
		cam.Zoom = zoom
	}
	if err := SetEntityTransform(w, camera, x, y, 0); err != nil {
		return 0, fmt.Errorf("camera: override transform: %w", err)
	}
	return camera, nil
}
