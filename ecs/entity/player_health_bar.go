package entity

import (
	"fmt"

	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
	"github.com/milk9111/rpgplatformer/ecs/render"
)

const (
	heartSize    = 30.0
	heartSpacing = 35.0
	heartLeft    = 20.0
	heartTop     = 40.0
)

// NewPlayerHealthBar adds one screen-space heart per health point of the player.
func NewPlayerHealthBar(w *ecs.World) error {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return nil
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok || health.Max <= 0 {
		return nil
	}

	full, err := render.LoadImage("ui/heart_full.png")
	if err != nil {
		return fmt.Errorf("player health bar: load heart sprite: %w", err)
	}
	empty, err := render.LoadImage("ui/heart_empty.png")
	if err != nil {
		return fmt.Errorf("player health bar: load empty heart sprite: %w", err)
	}

	scale := 1.0
	if iw := full.Bounds().Dx(); iw > 0 {
		scale = heartSize / float64(iw)
	}

	for i := 0; i < health.Max; i++ {
		heart := ecs.CreateEntity(w)
		if err := ecs.Add(w, heart, component.HealthHeartComponent.Kind(), &component.HealthHeart{Slot: i, Full: full, Empty: empty}); err != nil {
			return fmt.Errorf("player health bar: add heart component: %w", err)
		}
		if err := ecs.Add(w, heart, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
			return fmt.Errorf("player health bar: add heart screen-space: %w", err)
		}
		if err := ecs.Add(w, heart, component.TransformComponent.Kind(), &component.Transform{
			X:      heartLeft + heartSize/2 + float64(i)*heartSpacing,
			Y:      heartTop + heartSize/2,
			ScaleX: scale,
			ScaleY: scale,
		}); err != nil {
			return fmt.Errorf("player health bar: add heart transform: %w", err)
		}
		if err := ecs.Add(w, heart, component.SpriteComponent.Kind(), &component.Sprite{Image: full}); err != nil {
			return fmt.Errorf("player health bar: add heart sprite: %w", err)
		}
		if err := ecs.Add(w, heart, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerHUD}); err != nil {
			return fmt.Errorf("player health bar: add heart render layer: %w", err)
		}
	}
	return nil
}
