package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
	"github.com/milk9111/rpgplatformer/ecs/entity"
	"github.com/milk9111/rpgplatformer/levels"
)

// LevelSource reads a level document by name.
type LevelSource func(name string) (*levels.Level, error)

// LevelBuilder populates an empty world from a level.
type LevelBuilder func(w *ecs.World, lvl *levels.Level, opts entity.LevelOptions) error

// LoadLevel prefers a file on disk and falls back to the embedded levels.
func LoadLevel(name string) (*levels.Level, error) {
	if _, err := os.Stat(name); err == nil {
		return levels.LoadFile(name)
	}
	return levels.LoadLevelFromFS(name)
}

var ErrNoLevels = errors.New("level loader: no levels configured")

// LevelLoaderSystem owns level IO. Other systems ask for a new level through
// LevelChangeRequest or ReloadRequest entities; the loader clears the world,
// resets physics and rebuilds it.
type LevelLoaderSystem struct {
	names        []string
	index        int
	opts         entity.LevelOptions
	source       LevelSource
	build        LevelBuilder
	physicsReset func()
}

func NewLevelLoaderSystem(names []string, start int, opts entity.LevelOptions, physicsReset func()) *LevelLoaderSystem {
	return &LevelLoaderSystem{
		names:        append([]string(nil), names...),
		index:        start,
		opts:         opts,
		source:       LoadLevel,
		build:        entity.LoadLevelToWorld,
		physicsReset: physicsReset,
	}
}

// WithSource replaces how level documents are read.
func (l *LevelLoaderSystem) WithSource(source LevelSource) *LevelLoaderSystem {
	l.source = source
	return l
}

// WithBuilder replaces how a level is turned into entities.
func (l *LevelLoaderSystem) WithBuilder(build LevelBuilder) *LevelLoaderSystem {
	l.build = build
	return l
}

func (l *LevelLoaderSystem) Index() int { return l.index }

func (l *LevelLoaderSystem) Count() int { return len(l.names) }

// Load replaces the world with the level at index. A level that cannot be
// read or fails validation leaves the world untouched.
func (l *LevelLoaderSystem) Load(w *ecs.World, index int) error {
	if len(l.names) == 0 {
		return ErrNoLevels
	}
	if index < 0 || index >= len(l.names) {
		return fmt.Errorf("level loader: index %d out of range [0, %d)", index, len(l.names))
	}
	name := l.names[index]
	lvl, err := l.source(name)
	if err != nil {
		return fmt.Errorf("level loader: %w", err)
	}
	if err := levels.Validate(lvl); err != nil {
		return fmt.Errorf("level loader: %s: %w", name, err)
	}

	clearWorld(w)
	if l.physicsReset != nil {
		l.physicsReset()
	}

	opts := l.opts
	opts.Index = index
	opts.Count = len(l.names)
	if err := l.build(w, lvl, opts); err != nil {
		clearWorld(w)
		return fmt.Errorf("level loader: build %s: %w", name, err)
	}

	l.index = index
	SnapCamera(w)
	w.Events().Push(ecs.Event{Kind: ecs.EventLevelLoaded, Data: lvl.Name})
	log.Info("level loaded", "index", index, "name", lvl.Name, "file", name)
	return nil
}

func (l *LevelLoaderSystem) Update(w *ecs.World) {
	if l == nil || w == nil {
		return
	}

	target := -1
	if e, ok := ecs.First(w, component.LevelChangeRequestComponent.Kind()); ok {
		req, _ := ecs.Get(w, e, component.LevelChangeRequestComponent.Kind())
		target = req.Index
	} else if _, ok := ecs.First(w, component.ReloadRequestComponent.Kind()); ok {
		target = l.index
	}
	if target < 0 {
		return
	}
	dropRequests(w)

	if err := l.Load(w, target); err != nil {
		log.Error("level change failed", "target", target, "err", err)
		if len(ecs.Entities(w)) == 0 && target != l.index {
			if err := l.Load(w, l.index); err != nil {
				log.Error("restore level failed", "index", l.index, "err", err)
			}
		}
	}
}

func dropRequests(w *ecs.World) {
	var stale []ecs.Entity
	ecs.ForEach(w, component.LevelChangeRequestComponent.Kind(), func(e ecs.Entity, _ *component.LevelChangeRequest) {
		stale = append(stale, e)
	})
	ecs.ForEach(w, component.ReloadRequestComponent.Kind(), func(e ecs.Entity, _ *component.ReloadRequest) {
		stale = append(stale, e)
	})
	for _, e := range stale {
		ecs.DestroyEntity(w, e)
	}
}

func clearWorld(w *ecs.World) {
	for _, e := range ecs.Entities(w) {
		ecs.DestroyEntity(w, e)
	}
}
