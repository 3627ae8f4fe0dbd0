package system

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

func gameState(w *ecs.World) (*component.GameState, bool) {
	e, ok := ecs.First(w, component.GameStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.GameStateComponent.Kind())
}

// ExitSystem requests the next level when the player reaches an exit. The
// last level has no working exit.
type ExitSystem struct{}

func NewExitSystem() *ExitSystem { return &ExitSystem{} }

func (s *ExitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	state, ok := gameState(w)
	if !ok || state.LastLevel() {
		return
	}
	if _, pending := ecs.First(w, component.LevelChangeRequestComponent.Kind()); pending {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	box, ok := hurtboxRect(w, player)
	if !ok || !touchesVolume(w, box, component.VolumeExit) {
		return
	}

	req := ecs.CreateEntity(w)
	_ = ecs.Add(w, req, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{Index: state.LevelIndex + 1})
	w.Events().Push(ecs.Event{Kind: ecs.EventLevelCompleted, Data: state.LevelName})
	log.Info("level complete", "level", state.LevelName)
}

// CheckpointSystem heals the player on any checkpoint and moves the spawn
// point to each checkpoint the first time it is touched.
type CheckpointSystem struct{}

func NewCheckpointSystem() *CheckpointSystem { return &CheckpointSystem{} }

// CheckpointID keys a checkpoint by its centre.
func CheckpointID(v *component.Volume) string {
	return fmt.Sprintf("%v_%v", v.CenterX(), v.CenterY())
}

func (s *CheckpointSystem) Update(w *ecs.World) {
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
	hits := overlappingVolumes(w, box, component.VolumeCheckpoint)
	if len(hits) == 0 {
		return
	}

	if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
		h.Current = h.Max
	}

	spawn, ok := ecs.Get(w, player, component.SpawnPointComponent.Kind())
	if !ok {
		return
	}
	if spawn.Activated == nil {
		spawn.Activated = map[string]bool{}
	}
	for _, flag := range hits {
		id := CheckpointID(flag)
		if spawn.Activated[id] {
			continue
		}
		spawn.Activated[id] = true
		spawn.X, spawn.Y = flag.CenterX(), flag.CenterY()
		w.Events().Push(ecs.Event{Kind: ecs.EventCheckpoint, Entity: player, Data: id})
		log.Info("checkpoint activated", "id", id)
	}
}

// VictorySystem wins the game once the last level has no enemies left.
type VictorySystem struct{}

func NewVictorySystem() *VictorySystem { return &VictorySystem{} }

func (s *VictorySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	state, ok := gameState(w)
	if !ok || state.Victory || !state.LastLevel() {
		return
	}
	if ecs.Count(w, component.EnemyTagComponent.Kind()) > 0 {
		return
	}
	state.Victory = true
	w.Events().Push(ecs.Event{Kind: ecs.EventVictory, Data: state.LevelName})
	log.Info("victory", "level", state.LevelName)
}
