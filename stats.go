package main

import (
	"time"

	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/storage"
)

// runStats tallies one playthrough from the world's event stream.
type runStats struct {
	started      time.Time
	deaths       int
	defeated     int
	levels       int
	character    string
	firstChar    string
	finished     bool
	finishedTime time.Time
}

func newRunStats(firstCharacter string, now time.Time) *runStats {
	return &runStats{started: now, character: firstCharacter, firstChar: firstCharacter}
}

// Observe folds one event into the tally. Events after victory are ignored.
func (s *runStats) Observe(ev ecs.Event, now time.Time) {
	if s.finished {
		return
	}
	switch ev.Kind {
	case ecs.EventPlayerDied:
		s.deaths++
	case ecs.EventEnemyDefeated:
		s.defeated++
	case ecs.EventLevelCompleted:
		s.levels++
	case ecs.EventLevelLoaded:
		// every level starts with a fresh player on the first character
		s.character = s.firstChar
	case ecs.EventCharacterSwitch:
		s.character = ev.Data
	case ecs.EventVictory:
		s.finished = true
		s.finishedTime = now
	}
}

func (s *runStats) Finished() bool { return s.finished }

// Run converts the tally into a storage record.
func (s *runStats) Run(now time.Time) storage.Run {
	end := now
	if s.finished {
		end = s.finishedTime
	}
	return storage.Run{
		Duration:        end.Sub(s.started),
		Deaths:          s.deaths,
		EnemiesDefeated: s.defeated,
		Character:       s.character,
	}
}
