package main

import (
	"testing"
	"time"

	"github.com/milk9111/rpgplatformer/ecs"
)

func TestRunStats(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	at := func(sec int) time.Time { return start.Add(time.Duration(sec) * time.Second) }

	tests := []struct {
		name      string
		events    []ecs.Event
		wantDeath int
		wantKills int
		wantChar  string
		finished  bool
	}{
		{
			name:     "nothing happened",
			wantChar: "archer",
		},
		{
			name: "deaths and kills",
			events: []ecs.Event{
				{Kind: ecs.EventPlayerDied},
				{Kind: ecs.EventEnemyDefeated, Data: "boxing_ghost"},
				{Kind: ecs.EventEnemyDefeated, Data: "boxing_ghost"},
				{Kind: ecs.EventPlayerDamaged},
			},
			wantDeath: 1, wantKills: 2, wantChar: "archer",
		},
		{
			name: "switch then new level",
			events: []ecs.Event{
				{Kind: ecs.EventCharacterSwitch, Data: "wizard"},
				{Kind: ecs.EventLevelCompleted},
				{Kind: ecs.EventLevelLoaded, Data: "Level 2"},
			},
			wantChar: "archer",
		},
		{
			name: "events after victory ignored",
			events: []ecs.Event{
				{Kind: ecs.EventCharacterSwitch, Data: "knight"},
				{Kind: ecs.EventVictory},
				{Kind: ecs.EventPlayerDied},
			},
			wantChar: "knight", finished: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newRunStats("archer", start)
			for i, ev := range tc.events {
				s.Observe(ev, at(i+1))
			}
			run := s.Run(at(100))
			if run.Deaths != tc.wantDeath || run.EnemiesDefeated != tc.wantKills || run.Character != tc.wantChar {
				t.Fatalf("run = %+v", run)
			}
			if s.Finished() != tc.finished {
				t.Fatalf("Finished() = %v, want %v", s.Finished(), tc.finished)
			}
		})
	}
}

func TestRunStatsDurationStopsAtVictory(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := newRunStats("archer", start)
	s.Observe(ecs.Event{Kind: ecs.EventVictory}, start.Add(90*time.Second))

	if got := s.Run(start.Add(time.Hour)).Duration; got != 90*time.Second {
		t.Fatalf("Duration = %v, want 90s", got)
	}
}
