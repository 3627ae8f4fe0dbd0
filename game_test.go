package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/rpgplatformer/config"
	"github.com/milk9111/rpgplatformer/ecs/system"
)

func TestResolveLevels(t *testing.T) {
	configured := []string{"level1.json", "level2.json", "level3.json"}
	custom := filepath.Join(t.TempDir(), "custom.json")
	if err := os.WriteFile(custom, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		choice    string
		wantNames []string
		wantStart int
		wantErr   bool
	}{
		{name: "default", choice: "", wantNames: configured, wantStart: 0},
		{name: "exact name", choice: "level2.json", wantNames: configured, wantStart: 1},
		{name: "without extension", choice: "level3", wantNames: configured, wantStart: 2},
		{name: "file on disk", choice: custom, wantNames: []string{custom}, wantStart: 0},
		{name: "unknown", choice: "level9", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			names, start, err := resolveLevels(configured, tc.choice)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveLevels: %v", err)
			}
			if start != tc.wantStart || len(names) != len(tc.wantNames) {
				t.Fatalf("got (%v, %d), want (%v, %d)", names, start, tc.wantNames, tc.wantStart)
			}
			for i := range names {
				if names[i] != tc.wantNames[i] {
					t.Fatalf("names = %v, want %v", names, tc.wantNames)
				}
			}
		})
	}

	if _, _, err := resolveLevels(nil, ""); !errors.Is(err, system.ErrNoLevels) {
		t.Fatalf("err = %v, want ErrNoLevels", err)
	}
}

func TestLevelOptionsFromDefaults(t *testing.T) {
	opts := levelOptions(config.Default())
	tuning := opts.Player.Tuning

	checks := []struct {
		name      string
		got, want int
	}{
		{"float frames", tuning.FloatFrames, 120},
		{"dash frames", tuning.DashFrames, 30},
		{"dash cooldown", tuning.DashCooldownFrames, 120},
		{"attack frames", tuning.AttackFrames, 18},
		{"attack cooldown", tuning.AttackCooldownFrames, 30},
		{"invulnerable", tuning.InvulnerableFrames, 60},
		{"blink", tuning.BlinkInterval, 6},
		{"max health", opts.Player.MaxHealth, 3},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
	if len(opts.Player.Characters) != 3 || opts.Player.Characters[0] != "archer" {
		t.Errorf("characters = %v", opts.Player.Characters)
	}
	if opts.ViewWidth != 1280 || opts.ViewHeight != 780 {
		t.Errorf("view = %vx%v", opts.ViewWidth, opts.ViewHeight)
	}
}

func TestCombatSettingsFromDefaults(t *testing.T) {
	s := combatSettings(config.Default())
	if s.FlashFrames != 18 || s.FlashInterval != 3 {
		t.Fatalf("settings = %+v, want 18 frames every 3", s)
	}
}
