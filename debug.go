package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
	"github.com/milk9111/rpgplatformer/ecs/render"
	"github.com/milk9111/rpgplatformer/ecs/system"
	"github.com/milk9111/rpgplatformer/prefabs"
	"golang.design/x/clipboard"
)

// debugTools is only built with --debug. F1 toggles the collider overlay,
// F2 copies the player position for level authoring, and edits to prefab
// files reload the level.
type debugTools struct {
	overlay     bool
	clipboardOK bool
	watcher     *prefabs.Watcher
	patrol      *system.EnemyPatrolSystem
	physics     *system.PhysicsSystem
}

func newDebugTools(patrol *system.EnemyPatrolSystem, physics *system.PhysicsSystem) *debugTools {
	d := &debugTools{overlay: true, patrol: patrol, physics: physics}

	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable", "err", err)
	} else {
		d.clipboardOK = true
	}

	watcher, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
	if err != nil {
		log.Warn("prefab hot reload disabled", "err", err)
	} else {
		d.watcher = watcher
	}
	return d
}

func (d *debugTools) Update(w *ecs.World) {
	if d == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		d.overlay = !d.overlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		d.copyPlayerPosition(w)
	}
	d.pollWatcher(w)
}

func (d *debugTools) copyPlayerPosition(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	pos := fmt.Sprintf(`"x": %.0f, "y": %.0f`, t.X, t.Y)
	if d.clipboardOK {
		clipboard.Write(clipboard.FmtText, []byte(pos))
	}
	log.Info("player position", "pos", pos)
}

// pollWatcher drains pending file events without blocking. Any prefab or
// script change drops the caches and rebuilds the current level.
func (d *debugTools) pollWatcher(w *ecs.World) {
	if d.watcher == nil {
		return
	}
	changed := ""
	for {
		select {
		case name, ok := <-d.watcher.Events:
			if !ok {
				d.watcher = nil
				return
			}
			changed = name
			continue
		case err, ok := <-d.watcher.Errors:
			if !ok {
				d.watcher = nil
				return
			}
			log.Warn("prefab watcher", "err", err)
			continue
		default:
		}
		break
	}
	if changed == "" {
		return
	}

	log.Info("prefab changed, reloading level", "file", changed)
	render.Forget()
	if d.patrol != nil {
		d.patrol.Invalidate()
	}
	if _, ok := ecs.First(w, component.ReloadRequestComponent.Kind()); ok {
		return
	}
	req := ecs.CreateEntity(w)
	if err := ecs.Add(w, req, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{}); err != nil {
		log.Error("queue reload", "err", err)
	}
}

func (d *debugTools) Draw(w *ecs.World, screen *ebiten.Image) {
	if d == nil || !d.overlay {
		return
	}
	if d.physics != nil {
		system.DrawPhysicsDebug(d.physics.Space(), w, screen)
	}
	system.DrawVolumeDebug(w, screen)
	system.DrawPlayerDebug(w, screen)
}

func (d *debugTools) Close() {
	if d == nil || d.watcher == nil {
		return
	}
	_ = d.watcher.Close()
}
