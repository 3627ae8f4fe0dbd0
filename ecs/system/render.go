package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/rpgplatformer/common"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

const (
	enemyBarWidth  = 30
	enemyBarHeight = 4
	enemyBarGap    = 10
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type drawItem struct {
	entity ecs.Entity
	layer  int
}

// Draw renders every sprite by layer. World sprites go through the camera;
// ScreenSpace sprites are drawn at their transform in screen pixels.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	camX, camY, zoom := CameraTransform(w)

	var items []drawItem
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Transform, s *component.Sprite) {
		if s.Image == nil {
			return
		}
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = l.Index
		}
		items = append(items, drawItem{entity: e, layer: layer})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].entity) < uint64(items[j].entity)
	})

	for _, item := range items {
		e := item.entity
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())

		if ecs.Has(w, e, component.ScreenSpaceComponent.Kind()) {
			drawSprite(screen, s, t, 0, 0, 1)
			continue
		}
		drawSprite(screen, s, t, camX, camY, zoom)
	}

	r.drawEnemyHealthBars(w, screen, camX, camY, zoom)
}

func drawSprite(screen *ebiten.Image, s *component.Sprite, t *component.Transform, camX, camY, zoom float64) {
	img := s.Image
	if s.UseSource {
		if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
			img = sub
		}
	}
	imgW := float64(img.Bounds().Dx())
	imgH := float64(img.Bounds().Dy())

	originX, originY := s.OriginX, s.OriginY
	if originX == 0 && originY == 0 {
		originX, originY = imgW/2, imgH/2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-originX, -originY)

	sx := t.ScaleX
	if sx == 0 {
		sx = 1
	}
	sy := t.ScaleY
	if sy == 0 {
		sy = 1
	}
	if s.FacingLeft {
		sx = -sx
	}

	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate((t.X-camX)*zoom, (t.Y-camY)*zoom)
	if s.Dim {
		op.ColorScale.ScaleAlpha(0.5)
	}

	screen.DrawImage(img, op)
}

// drawEnemyHealthBars shows a bar over every enemy that has lost health.
func (r *RenderSystem) drawEnemyHealthBars(w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64) {
	ecs.ForEach2(w, component.EnemyTagComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, _ *component.EnemyTag, h *component.Health) {
		if h.Max <= 0 || h.Current >= h.Max {
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		height := 0.0
		if _, sh, ok := spriteSize(w, e); ok {
			height = sh
		}

		x := t.X - enemyBarWidth/2
		y := t.Y - height/2 - enemyBarGap - enemyBarHeight
		frac := common.Clamp(float64(h.Current)/float64(h.Max), 0, 1)

		sx := float32((x - camX) * zoom)
		sy := float32((y - camY) * zoom)
		vector.FillRect(screen, sx, sy, float32(enemyBarWidth*zoom), float32(enemyBarHeight*zoom), color.RGBA{R: 255, A: 255}, false)
		vector.FillRect(screen, sx, sy, float32(enemyBarWidth*frac*zoom), float32(enemyBarHeight*zoom), color.RGBA{G: 255, A: 255}, false)
	})
}
