package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rpgplatformer/config"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
	"github.com/milk9111/rpgplatformer/ecs/entity"
	"github.com/milk9111/rpgplatformer/ecs/system"
	"github.com/milk9111/rpgplatformer/storage"
)

type Game struct {
	cfg   config.Config
	world *ecs.World
	sched *ecs.Scheduler

	physics *system.PhysicsSystem
	patrol  *system.EnemyPatrolSystem
	loader  *system.LevelLoaderSystem
	render  *system.RenderSystem

	hud   *HUD
	pause *ebitenui.UI
	debug *debugTools
	store *storage.Store
	stats *runStats

	paused           bool
	showInstructions bool
	saved            bool
	quit             bool
}

// GameOptions are the command line choices layered over the config.
type GameOptions struct {
	Level string
	Debug bool
	Store *storage.Store
}

func NewGame(cfg config.Config, opts GameOptions) (*Game, error) {
	names, start, err := resolveLevels(cfg.Levels, opts.Level)
	if err != nil {
		return nil, err
	}

	hud, err := NewHUD()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:              cfg,
		world:            ecs.NewWorld(),
		physics:          system.NewPhysicsSystem(physicsSettings(cfg)),
		patrol:           system.NewEnemyPatrolSystem(),
		render:           system.NewRenderSystem(),
		hud:              hud,
		store:            opts.Store,
		stats:            newRunStats(cfg.Player.Characters[0], time.Now()),
		showInstructions: true,
	}
	g.loader = system.NewLevelLoaderSystem(names, start, levelOptions(cfg), g.physics.Reset)
	g.sched = newScheduler(cfg, g.physics, g.patrol, g.loader)
	g.pause = NewPauseUI(cfg.Window.Width, cfg.Window.Height, pauseActions{
		Resume:       func() { g.paused = false },
		Restart:      g.restartLevel,
		Instructions: func() { g.showInstructions = !g.showInstructions },
		Quit:         func() { g.quit = true },
	})
	if opts.Debug {
		g.debug = newDebugTools(g.patrol, g.physics)
	}

	if err := g.loader.Load(g.world, start); err != nil {
		return nil, err
	}
	return g, nil
}

// newScheduler orders the systems so input is read first, physics runs after
// every velocity override, and level changes happen last.
func newScheduler(cfg config.Config, physics *system.PhysicsSystem, patrol *system.EnemyPatrolSystem, loader *system.LevelLoaderSystem) *ecs.Scheduler {
	return ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewPlayerControllerSystem(),
		system.NewAbilityTimerSystem(),
		system.NewHazardSystem(),
		system.NewMovementSystem(),
		physics,
		system.NewFallResetSystem(),
		system.NewAnimationSystem(),
		system.NewBlinkSystem(),
		patrol,
		system.NewTTLSystem(),
		system.NewFlickerSystem(),
		system.NewProjectileSystem(),
		system.NewCameraSystem(),
		system.NewExitSystem(),
		system.NewCombatSystem(combatSettings(cfg)),
		system.NewContactDamageSystem(),
		system.NewCheckpointSystem(),
		system.NewVictorySystem(),
		system.NewPlayerHealthBarSystem(),
		loader,
	)
}

func physicsSettings(cfg config.Config) system.PhysicsSettings {
	return system.PhysicsSettings{
		Gravity:           cfg.Physics.Gravity,
		Iterations:        cfg.Physics.Iterations,
		GroundGraceFrames: cfg.Physics.GroundGraceFrames,
	}
}

func combatSettings(cfg config.Config) system.CombatSettings {
	return system.CombatSettings{
		FlashFrames:   config.Frames(cfg.Rules.EnemyFlashDuration),
		FlashInterval: config.BlinkInterval(cfg.Rules.EnemyFlashRate),
	}
}

func levelOptions(cfg config.Config) entity.LevelOptions {
	p := cfg.Player
	return entity.LevelOptions{
		Player: entity.PlayerOptions{
			Tuning: component.Player{
				MoveSpeed:            p.MoveSpeed,
				JumpSpeed:            p.JumpSpeed,
				DashSpeed:            p.DashSpeed,
				FloatSpeed:           p.FloatSpeed,
				ClimbSpeed:           p.ClimbSpeed,
				FloatFrames:          config.Frames(p.FloatDuration),
				DashFrames:           config.Frames(p.DashDuration),
				DashCooldownFrames:   config.Frames(p.DashCooldown),
				AttackFrames:         config.Frames(p.AttackDuration),
				AttackCooldownFrames: config.Frames(p.AttackCooldown),
				InvulnerableFrames:   config.Frames(p.DamageCooldown),
				BlinkInterval:        config.BlinkInterval(p.BlinkRate),
			},
			MaxHealth:  p.MaxHealth,
			Characters: p.Characters,
			WalkStep:   p.WalkStep,
			SpawnX:     p.DefaultSpawn.X,
			SpawnY:     p.DefaultSpawn.Y,
		},
		ViewWidth:  float64(cfg.Window.Width),
		ViewHeight: float64(cfg.Window.Height),
		Zoom:       cfg.Window.Zoom,
	}
}

// resolveLevels picks the level list and start index. An empty choice starts
// at the first configured level. A choice naming a configured level, with or
// without ".json", starts there. Any other existing file is played alone.
func resolveLevels(configured []string, choice string) ([]string, int, error) {
	if len(configured) == 0 {
		return nil, 0, system.ErrNoLevels
	}
	if choice == "" {
		return configured, 0, nil
	}
	want := strings.TrimSuffix(choice, ".json")
	for i, name := range configured {
		if strings.TrimSuffix(name, ".json") == want {
			return configured, i, nil
		}
	}
	if _, err := os.Stat(choice); err == nil {
		return []string{choice}, 0, nil
	}
	return nil, 0, fmt.Errorf("game: unknown level %q", choice)
}

func (g *Game) restartLevel() {
	g.paused = false
	req := ecs.CreateEntity(g.world)
	if err := ecs.Add(g.world, req, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{}); err != nil {
		log.Error("restart level", "err", err)
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.showInstructions = !g.showInstructions
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && !g.stats.Finished() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pause.Update()
		return nil
	}
	if g.stats.Finished() {
		return nil
	}

	g.sched.Update(g.world)
	g.debug.Update(g.world)

	now := time.Now()
	for _, ev := range g.world.Events().Drain() {
		g.stats.Observe(ev, now)
	}
	if g.stats.Finished() {
		g.saveRun(now)
	}
	return nil
}

func (g *Game) saveRun(now time.Time) {
	if g.saved || g.store == nil {
		return
	}
	g.saved = true
	run := g.stats.Run(now)
	id, err := g.store.SaveRun(run)
	if err != nil {
		log.Error("save run", "err", err)
		return
	}
	log.Info("run saved", "id", id, "duration", run.Duration.Round(time.Second), "deaths", run.Deaths)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background())

	if g.stats.Finished() {
		g.hud.DrawVictory(screen)
		return
	}

	g.render.Draw(g.world, screen)
	g.debug.Draw(g.world, screen)
	g.hud.DrawStatus(g.world, screen)
	if g.showInstructions {
		g.hud.DrawInstructions(screen)
	}
	if g.paused {
		g.pause.Draw(screen)
	}
}

func (g *Game) background() color.Color {
	e, ok := ecs.First(g.world, component.LevelBoundsComponent.Kind())
	if !ok {
		return color.Black
	}
	bounds, _ := ecs.Get(g.world, e, component.LevelBoundsComponent.Kind())
	if bounds.Background == nil {
		return color.Black
	}
	return bounds.Background
}

func (g *Game) Close() {
	g.debug.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
