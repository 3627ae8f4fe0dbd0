package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/rpgplatformer/common"
)

// Config is the top level game configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Rules   RulesConfig   `yaml:"rules"`
	Levels  []string      `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
}

type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Title  string  `yaml:"title"`
	Zoom   float64 `yaml:"zoom"`
}

type PhysicsConfig struct {
	// Gravity is in pixels per frame squared, positive pulls down.
	Gravity           float64 `yaml:"gravity"`
	Iterations        int     `yaml:"iterations"`
	GroundGraceFrames int     `yaml:"ground_grace_frames"`
}

// PlayerConfig speeds are pixels per frame; durations are seconds.
type PlayerConfig struct {
	MoveSpeed      float64  `yaml:"move_speed"`
	JumpSpeed      float64  `yaml:"jump_speed"`
	DashSpeed      float64  `yaml:"dash_speed"`
	FloatSpeed     float64  `yaml:"float_speed"`
	ClimbSpeed     float64  `yaml:"climb_speed"`
	MaxHealth      int      `yaml:"max_health"`
	DamageCooldown float64  `yaml:"damage_cooldown"`
	FloatDuration  float64  `yaml:"float_duration"`
	DashDuration   float64  `yaml:"dash_duration"`
	DashCooldown   float64  `yaml:"dash_cooldown"`
	AttackDuration float64  `yaml:"attack_duration"`
	AttackCooldown float64  `yaml:"attack_cooldown"`
	BlinkRate      float64  `yaml:"blink_rate"`
	WalkStep       float64  `yaml:"walk_step"`
	DefaultSpawn   Point    `yaml:"default_spawn"`
	Characters     []string `yaml:"characters"`
}

type RulesConfig struct {
	EnemyFlashDuration float64 `yaml:"enemy_flash_duration"`
	EnemyFlashRate     float64 `yaml:"enemy_flash_rate"`
}

type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

var ErrInvalid = errors.New("config: invalid")

// Validate reports the first setting that cannot run.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.Zoom <= 0:
		return fmt.Errorf("%w: window zoom %v", ErrInvalid, c.Window.Zoom)
	case c.Physics.Iterations <= 0:
		return fmt.Errorf("%w: physics iterations %d", ErrInvalid, c.Physics.Iterations)
	case c.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: player max_health %d", ErrInvalid, c.Player.MaxHealth)
	case len(c.Player.Characters) == 0:
		return fmt.Errorf("%w: no player characters", ErrInvalid)
	case len(c.Levels) == 0:
		return fmt.Errorf("%w: no levels", ErrInvalid)
	}
	durations := map[string]float64{
		"damage_cooldown":      c.Player.DamageCooldown,
		"float_duration":       c.Player.FloatDuration,
		"dash_duration":        c.Player.DashDuration,
		"dash_cooldown":        c.Player.DashCooldown,
		"attack_duration":      c.Player.AttackDuration,
		"attack_cooldown":      c.Player.AttackCooldown,
		"enemy_flash_duration": c.Rules.EnemyFlashDuration,
	}
	for name, v := range durations {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%w: %s %v", ErrInvalid, name, v)
		}
	}
	return nil
}

// Frames converts a configured duration to ticks.
func Frames(seconds float64) int {
	return common.Frames(seconds)
}

// BlinkInterval converts an alternation rate in Hz to ticks per phase.
func BlinkInterval(rate float64) int {
	if rate <= 0 {
		return 0
	}
	n := int(math.Round(common.TPS / rate))
	if n < 1 {
		n = 1
	}
	return n
}
