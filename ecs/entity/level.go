package entity

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
	"github.com/milk9111/rpgplatformer/ecs/render"
	"github.com/milk9111/rpgplatformer/levels"
)

// LevelOptions describe the world around a level: where it sits in the run,
// how the player is tuned and what the camera shows.
type LevelOptions struct {
	Index      int
	Count      int
	Player     PlayerOptions
	ViewWidth  float64
	ViewHeight float64
	Zoom       float64
}

var defaultLayerTiles = map[string]string{
	levels.KindPlatforms:  "tiles/ground.png",
	levels.KindClimbable:  "tiles/vine.png",
	levels.KindDanger:     "tiles/spikes.png",
	levels.KindExit:       "tiles/exit.png",
	levels.KindCheckpoint: "tiles/checkpoint.png",
	levels.KindDecor:      "tiles/grass.png",
}

var layerVolumes = map[string]component.VolumeKind{
	levels.KindPlatforms:  component.VolumePlatform,
	levels.KindClimbable:  component.VolumeClimbable,
	levels.KindDanger:     component.VolumeDanger,
	levels.KindExit:       component.VolumeExit,
	levels.KindCheckpoint: component.VolumeCheckpoint,
}

// LoadLevelToWorld populates an empty world with a level: tile art, merged
// platform colliders, gameplay volumes, enemies, the player and the camera.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, opts LevelOptions) error {
	if err := levels.Validate(lvl); err != nil {
		return err
	}
	tileSize := float64(lvl.TileSize)

	state := ecs.CreateEntity(world)
	if err := ecs.Add(world, state, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:      lvl.PixelWidth(),
		Height:     lvl.PixelHeight(),
		Background: lvl.BackgroundColor(),
	}); err != nil {
		return err
	}
	if err := ecs.Add(world, state, component.GameStateComponent.Kind(), &component.GameState{
		LevelIndex: opts.Index,
		LevelCount: opts.Count,
		LevelName:  lvl.Name,
	}); err != nil {
		return err
	}

	for _, layer := range lvl.Layers {
		if err := addLayerTiles(world, layer, tileSize); err != nil {
			return fmt.Errorf("level %s: layer %s: %w", lvl.Name, layer.Name, err)
		}
		kind, ok := layerVolumes[layer.Kind]
		if !ok {
			continue
		}
		for _, r := range layer.Rects {
			v := &component.Volume{
				Kind:   kind,
				X:      float64(r.X) * tileSize,
				Y:      float64(r.Y) * tileSize,
				Width:  float64(r.W) * tileSize,
				Height: float64(r.H) * tileSize,
			}
			v.ID = fmt.Sprintf("%v_%v", v.CenterX(), v.CenterY())
			if err := ecs.Add(world, ecs.CreateEntity(world), component.VolumeComponent.Kind(), v); err != nil {
				return err
			}
		}
	}

	var solid []levels.Rect
	for _, layer := range lvl.LayersOf(levels.KindPlatforms) {
		solid = append(solid, layer.Rects...)
	}
	for _, r := range mergeRects(solid, lvl.Width, lvl.Height) {
		if err := addStaticCollider(world, r, tileSize); err != nil {
			return err
		}
	}

	for i, ent := range lvl.Entities {
		switch ent.Type {
		case "enemy":
			if _, err := NewEnemy(world, ent, i); err != nil {
				return fmt.Errorf("level %s: %w", lvl.Name, err)
			}
		default:
			log.Debug("level entity ignored", "level", lvl.Name, "type", ent.Type)
		}
	}

	player, err := NewPlayer(world, opts.Player)
	if err != nil {
		return err
	}
	if err := placeAtSpawn(world, player, lvl); err != nil {
		return err
	}
	if err := NewPlayerHealthBar(world); err != nil {
		return err
	}

	pt, _ := ecs.Get(world, player, component.TransformComponent.Kind())
	if _, err := NewCameraAt(world, pt.X, pt.Y, opts.ViewWidth, opts.ViewHeight, opts.Zoom); err != nil {
		return err
	}
	return nil
}

// placeAtSpawn moves the player and its spawn point to the centre of the
// level's first start rect. Levels without one keep the configured spawn.
func placeAtSpawn(world *ecs.World, player ecs.Entity, lvl *levels.Level) error {
	x, y, ok := lvl.Spawn()
	if !ok {
		return nil
	}
	if spawn, ok := ecs.Get(world, player, component.SpawnPointComponent.Kind()); ok {
		spawn.X, spawn.Y = x, y
	}
	return SetEntityTransform(world, player, x, y, 0)
}

func addLayerTiles(world *ecs.World, layer levels.Layer, tileSize float64) error {
	path := layer.Tile
	if path == "" {
		path = defaultLayerTiles[layer.Kind]
	}
	if path == "" {
		return nil
	}
	img := render.MustLoadImage(path)

	index := component.LayerTiles
	if layer.Kind == levels.KindDecor {
		index = component.LayerTiles + 1
	}
	scaleX, scaleY := tileScale(img, tileSize)

	for _, r := range layer.Rects {
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				e := ecs.CreateEntity(world)
				if err := ecs.Add(world, e, component.TileTagComponent.Kind(), &component.TileTag{}); err != nil {
					return err
				}
				if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{
					X:      (float64(x) + 0.5) * tileSize,
					Y:      (float64(y) + 0.5) * tileSize,
					ScaleX: scaleX,
					ScaleY: scaleY,
				}); err != nil {
					return err
				}
				if err := ecs.Add(world, e, component.SpriteComponent.Kind(), &component.Sprite{Image: img}); err != nil {
					return err
				}
				if err := ecs.Add(world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: index}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func tileScale(img *ebiten.Image, tileSize float64) (float64, float64) {
	if img == nil {
		return 1, 1
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return 1, 1
	}
	return tileSize / float64(w), tileSize / float64(h)
}

func addStaticCollider(world *ecs.World, r levels.Rect, tileSize float64) error {
	e := ecs.CreateEntity(world)
	if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{
		X:      (float64(r.X) + float64(r.W)/2) * tileSize,
		Y:      (float64(r.Y) + float64(r.H)/2) * tileSize,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return err
	}
	return ecs.Add(world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    float64(r.W) * tileSize,
		Height:   float64(r.H) * tileSize,
		Friction: 0.9,
		Static:   true,
	})
}

// mergeRects rasterises possibly overlapping tile rects onto the level grid
// and greedily re-merges the cells into as few rectangles as it can, so
// adjacent platforms share one collider and leave no seams.
func mergeRects(rects []levels.Rect, width, height int) []levels.Rect {
	if width <= 0 || height <= 0 {
		return nil
	}
	filled := make([]bool, width*height)
	index := func(x, y int) int { return y*width + x }
	for _, r := range rects {
		for y := max(r.Y, 0); y < min(r.Y+r.H, height); y++ {
			for x := max(r.X, 0); x < min(r.X+r.W, width); x++ {
				filled[index(x, y)] = true
			}
		}
	}

	visited := make([]bool, width*height)
	open := func(x, y int) bool {
		i := index(x, y)
		return filled[i] && !visited[i]
	}

	var out []levels.Rect
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !open(x, y) {
				continue
			}

			maxW := 0
			for x2 := x; x2 < width && open(x2, y); x2++ {
				maxW++
			}

			maxH := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+maxW; x2++ {
					if !open(x2, y2) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				maxH++
			}

			for yy := y; yy < y+maxH; yy++ {
				for xx := x; xx < x+maxW; xx++ {
					visited[index(xx, yy)] = true
				}
			}
			out = append(out, levels.Rect{X: x, Y: y, W: maxW, H: maxH})
		}
	}
	return out
}
