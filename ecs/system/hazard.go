package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// HazardSystem hurts the player while it overlaps a danger volume.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	box, ok := hurtboxRect(w, player)
	if !ok {
		return
	}
	if touchesVolume(w, box, component.VolumeDanger) {
		DamagePlayer(w, player)
	}
}

var volumeDebugColors = map[component.VolumeKind]color.RGBA{
	component.VolumePlatform:   {R: 255, G: 255, B: 255, A: 160},
	component.VolumeClimbable:  {R: 0, G: 200, B: 0, A: 200},
	component.VolumeDanger:     {R: 255, G: 0, B: 0, A: 200},
	component.VolumeExit:       {R: 255, G: 215, B: 0, A: 200},
	component.VolumeCheckpoint: {R: 0, G: 160, B: 255, A: 200},
}

// DrawVolumeDebug outlines every gameplay volume and fills the dangerous ones.
func DrawVolumeDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	camX, camY, zoom := CameraTransform(w)
	ecs.ForEach(w, component.VolumeComponent.Kind(), func(_ ecs.Entity, v *component.Volume) {
		c, ok := volumeDebugColors[v.Kind]
		if !ok {
			return
		}
		x := float32((v.X - camX) * zoom)
		y := float32((v.Y - camY) * zoom)
		wdt := float32(v.Width * zoom)
		hgt := float32(v.Height * zoom)
		if v.Kind == component.VolumeDanger {
			vector.FillRect(screen, x, y, wdt, hgt, color.RGBA{R: 255, A: 48}, false)
		}
		vector.StrokeRect(screen, x, y, wdt, hgt, 1.0, c, false)
	})
}
