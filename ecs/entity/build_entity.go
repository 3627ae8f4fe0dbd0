package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/rpgplatformer/common"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
	"github.com/milk9111/rpgplatformer/ecs/render"
	"github.com/milk9111/rpgplatformer/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":       addPlayerTag,
	"camera_tag":       addCameraTag,
	"enemy_tag":        addEnemyTag,
	"input":            addInput,
	"player_collision": addPlayerCollision,
	"transform":        addTransform,
	"sprite":           addSprite,
	"render_layer":     addRenderLayer,
	"camera":           addCamera,
	"physics_body":     addPhysicsBody,
	"gravity_scale":    addGravityScale,
	"hurtbox":          addHurtbox,
	"hitbox":           addHitbox,
	"health":           addHealth,
	"abilities":        addAbilities,
	"animation":        addAnimation,
	"roster":           addRoster,
	"projectile":       addProjectile,
	"ttl":              addTTL,
	"flicker":          addFlicker,
	"patrol_script":    addPatrolScript,
}

// componentBuildOrder lists components that read others during build:
// roster fills the animation and sprite, so it comes after both.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"enemy_tag",
	"input",
	"player_collision",
	"transform",
	"sprite",
	"render_layer",
	"camera",
	"physics_body",
	"gravity_scale",
	"hurtbox",
	"hitbox",
	"health",
	"abilities",
	"animation",
	"roster",
	"projectile",
	"ttl",
	"flicker",
	"patrol_script",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildFromSpec(w, prefabPath, spec)
}

func buildFromSpec(w *ecs.World, prefabPath string, spec entityPrefabSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addEnemyTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{SwitchTo: -1})
}

func addPlayerCollision(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{})
}

func addAbilities(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.AbilitiesComponent.Kind(), &component.Abilities{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	sprite := component.Sprite{
		OriginX:    spec.OriginX,
		OriginY:    spec.OriginY,
		FacingLeft: spec.FacingLeft,
	}
	if spec.Image != "" {
		img, err := render.LoadImage(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	if spec.Smoothness <= 0 {
		spec.Smoothness = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
	})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("physics body size %vx%v must be positive", spec.Width, spec.Height)
	}
	if !spec.Static && spec.Mass == 0 {
		spec.Mass = 1
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:      spec.Width,
		Height:     spec.Height,
		Mass:       spec.Mass,
		Friction:   spec.Friction,
		Elasticity: spec.Elasticity,
		Static:     spec.Static,
	})
}

type gravityScaleSpec = prefabs.GravityScaleComponentSpec

func addGravityScale(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gravityScaleSpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity scale spec: %w", err)
	}
	scale := 1.0
	if spec.Scale != nil {
		scale = *spec.Scale
	}
	return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: scale})
}

type boxSpec = prefabs.BoxComponentSpec

func addHurtbox(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[boxSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hurtbox spec: %w", err)
	}
	return ecs.Add(w, e, component.HurtboxComponent.Kind(), &component.Hurtbox{
		Width:   spec.Width,
		Height:  spec.Height,
		OffsetX: spec.OffsetX,
		OffsetY: spec.OffsetY,
	})
}

func addHitbox(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[boxSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hitbox spec: %w", err)
	}
	return ecs.Add(w, e, component.HitboxComponent.Kind(), &component.Hitbox{
		Width:   spec.Width,
		Height:  spec.Height,
		OffsetX: spec.OffsetX,
		OffsetY: spec.OffsetY,
	})
}

type healthSpec = prefabs.HealthComponentSpec

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[healthSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Max <= 0 {
		spec.Max = 1
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: spec.Max, Max: spec.Max})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{StepDistance: spec.StepDistance})
}

type rosterSpec = prefabs.RosterComponentSpec

func addRoster(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[rosterSpec](raw)
	if err != nil {
		return fmt.Errorf("decode roster spec: %w", err)
	}
	roster, err := LoadRoster(spec.Characters)
	if err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.RosterComponent.Kind(), roster); err != nil {
		return err
	}
	applyActiveCharacter(w, e)
	return nil
}

// LoadRoster reads each character prefab and its animation frames.
func LoadRoster(names []string) (*component.Roster, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("roster has no characters")
	}
	roster := &component.Roster{Characters: make([]component.Character, 0, len(names))}
	for _, name := range names {
		spec, err := prefabs.LoadCharacterSpec(name)
		if err != nil {
			return nil, err
		}
		walk := render.LoadFrames(spec.Walk.Paths())
		if len(walk) == 0 {
			return nil, fmt.Errorf("character %s has no walk frames", name)
		}
		roster.Characters = append(roster.Characters, component.Character{
			Name:    spec.Name,
			Ability: component.Ability(spec.Ability),
			Attack:  spec.Attack,
			Walk:    walk,
			Climb:   render.LoadFrames(spec.Climb.Paths()),
		})
	}
	return roster, nil
}

// applyActiveCharacter copies the active character's frames into the
// animation and shows its idle frame.
func applyActiveCharacter(w *ecs.World, e ecs.Entity) {
	roster, ok := ecs.Get(w, e, component.RosterComponent.Kind())
	if !ok {
		return
	}
	char := roster.Active()
	if char == nil {
		return
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	anim.Walk = char.Walk
	anim.Climb = char.Climb
	anim.Reset()
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		s.Image = anim.Idle()
	}
}

type projectileSpec = prefabs.ProjectileComponentSpec

func addProjectile(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[projectileSpec](raw)
	if err != nil {
		return fmt.Errorf("decode projectile spec: %w", err)
	}
	kind := component.ProjectileKind(spec.Kind)
	switch kind {
	case component.ProjectileSlash, component.ProjectileArrow, component.ProjectileFire:
	default:
		return fmt.Errorf("unknown projectile kind %q", spec.Kind)
	}
	return ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Kind:           kind,
		Damage:         spec.Damage,
		VX:             spec.Speed,
		Order:          spec.Order,
		StopOnPlatform: spec.StopOnPlatform,
		CullMargin:     spec.CullMargin,
		SpawnOffsetX:   spec.OffsetX,
		SpawnOffsetY:   spec.OffsetY,
	})
}

type ttlSpec = prefabs.TTLComponentSpec

func addTTL(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[ttlSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ttl spec: %w", err)
	}
	frames := common.Frames(spec.Seconds)
	if frames <= 0 {
		return fmt.Errorf("ttl %vs is shorter than one frame", spec.Seconds)
	}
	return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: frames})
}

type flickerSpec = prefabs.FlickerComponentSpec

func addFlicker(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[flickerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode flicker spec: %w", err)
	}
	interval := common.Frames(spec.Seconds)
	if interval < 1 {
		interval = 1
	}
	return ecs.Add(w, e, component.FlickerComponent.Kind(), &component.Flicker{
		Frames:   render.LoadFrames(spec.Frames),
		Interval: interval,
	})
}

type patrolScriptSpec = prefabs.PatrolScriptComponentSpec

func addPatrolScript(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[patrolScriptSpec](raw)
	if err != nil {
		return fmt.Errorf("decode patrol script spec: %w", err)
	}
	if spec.Path == "" {
		return nil
	}
	return ecs.Add(w, e, component.PatrolScriptComponent.Kind(), &component.PatrolScript{Path: spec.Path})
}
