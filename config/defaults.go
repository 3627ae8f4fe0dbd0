package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Default returns the built in configuration.
func Default() Config {
	return Config{
		Window:  WindowConfig{Width: 1280, Height: 780, Title: "RPG Platformer", Zoom: 1},
		Physics: PhysicsConfig{Gravity: 0.5, Iterations: 20, GroundGraceFrames: 2},
		Player: PlayerConfig{
			MoveSpeed:      3,
			JumpSpeed:      11,
			DashSpeed:      15,
			FloatSpeed:     2.5,
			ClimbSpeed:     3,
			MaxHealth:      3,
			DamageCooldown: 1.0,
			FloatDuration:  2.0,
			DashDuration:   0.5,
			DashCooldown:   2.0,
			AttackDuration: 0.3,
			AttackCooldown: 0.5,
			BlinkRate:      10,
			WalkStep:       20,
			DefaultSpawn:   Point{X: 96, Y: 160},
			Characters:     []string{"archer", "knight", "wizard"},
		},
		Rules: RulesConfig{
			EnemyFlashDuration: 0.3,
			EnemyFlashRate:     20,
		},
		Levels:  []string{"level1.json", "level2.json", "level3.json"},
		Storage: StorageConfig{Enabled: true, Path: "~/.rpgplatformer/runs.db"},
	}
}
