package system

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
	"github.com/milk9111/rpgplatformer/prefabs"
)

const patrolDispatchScript = `
update(__engine, __state)
`

// ScriptLoader returns the source of a named patrol script.
type ScriptLoader func(name string) ([]byte, error)

// EnemyPatrolSystem moves enemies and bounces them inside their patrol box.
// Enemies with a PatrolScript ask a tengo script for the next velocity and
// fall back to the built-in rule when the script fails.
type EnemyPatrolSystem struct {
	load     ScriptLoader
	compiled map[string]*tengo.Compiled
	broken   map[string]error
	states   map[ecs.Entity]*tengo.Map
}

func NewEnemyPatrolSystem() *EnemyPatrolSystem {
	return NewEnemyPatrolSystemWithLoader(prefabs.LoadScript)
}

func NewEnemyPatrolSystemWithLoader(load ScriptLoader) *EnemyPatrolSystem {
	return &EnemyPatrolSystem{
		load:     load,
		compiled: map[string]*tengo.Compiled{},
		broken:   map[string]error{},
		states:   map[ecs.Entity]*tengo.Map{},
	}
}

// Invalidate drops compiled scripts so edited files are picked up.
func (s *EnemyPatrolSystem) Invalidate() {
	s.compiled = map[string]*tengo.Compiled{}
	s.broken = map[string]error{}
}

func (s *EnemyPatrolSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for e := range s.states {
		if !ecs.IsAlive(w, e) {
			delete(s.states, e)
		}
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, en *component.Enemy, t *component.Transform) {
		t.X += en.VX
		t.Y += en.VY

		if script, ok := ecs.Get(w, e, component.PatrolScriptComponent.Kind()); ok && !script.Failed && script.Path != "" {
			if err := s.runScript(e, script.Path, en, t); err != nil {
				log.Warn("patrol script failed, using built-in patrol", "entity", e, "script", script.Path, "err", err)
				script.Failed = true
			} else {
				return
			}
		}
		BouncePatrol(en, t.X, t.Y)
	})
}

// BouncePatrol reverses the enemy at the edges of its patrol box. Each axis
// turns only when moving outward.
func BouncePatrol(en *component.Enemy, x, y float64) {
	if x >= en.Right && en.VX > 0 {
		en.VX = -math.Abs(en.SpeedX)
	} else if x <= en.Left && en.VX < 0 {
		en.VX = math.Abs(en.SpeedX)
	}

	if y <= en.Top && en.VY < 0 {
		en.VY = math.Abs(en.SpeedY)
	} else if y >= en.Bottom && en.VY > 0 {
		en.VY = -math.Abs(en.SpeedY)
	}
}

func (s *EnemyPatrolSystem) script(path string) (*tengo.Compiled, error) {
	if c, ok := s.compiled[path]; ok {
		return c, nil
	}
	if err, ok := s.broken[path]; ok {
		return nil, err
	}
	c, err := s.compile(path)
	if err != nil {
		s.broken[path] = err
		return nil, err
	}
	s.compiled[path] = c
	return c, nil
}

func (s *EnemyPatrolSystem) compile(path string) (*tengo.Compiled, error) {
	if s.load == nil {
		return nil, fmt.Errorf("patrol: no script loader")
	}
	src, err := s.load(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + patrolDispatchScript))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap("math", "fmt"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("patrol: compile %s: %w", path, err)
	}
	return compiled, nil
}

func (s *EnemyPatrolSystem) runScript(e ecs.Entity, path string, en *component.Enemy, t *component.Transform) error {
	compiled, err := s.script(path)
	if err != nil {
		return err
	}

	state := s.states[e]
	if state == nil {
		state = &tengo.Map{Value: map[string]tengo.Object{}}
		s.states[e] = state
	}

	if err := compiled.Set("__engine", buildPatrolEngine(en, t)); err != nil {
		return err
	}
	if err := compiled.Set("__state", state); err != nil {
		return err
	}
	return compiled.Run()
}

func floatPair(a, b float64) *tengo.Array {
	return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: a}, &tengo.Float{Value: b}}}
}

func buildPatrolEngine(en *component.Enemy, t *component.Transform) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return floatPair(t.X, t.Y), nil
	}}

	values["get_velocity"] = &tengo.UserFunction{Name: "get_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return floatPair(en.VX, en.VY), nil
	}}

	values["get_speed"] = &tengo.UserFunction{Name: "get_speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return floatPair(en.SpeedX, en.SpeedY), nil
	}}

	values["get_bounds"] = &tengo.UserFunction{Name: "get_bounds", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.ImmutableMap{Value: map[string]tengo.Object{
			"left":   &tengo.Float{Value: en.Left},
			"right":  &tengo.Float{Value: en.Right},
			"top":    &tengo.Float{Value: en.Top},
			"bottom": &tengo.Float{Value: en.Bottom},
		}}, nil
	}}

	values["get_name"] = &tengo.UserFunction{Name: "get_name", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.String{Value: en.Name}, nil
	}}

	values["set_velocity"] = &tengo.UserFunction{Name: "set_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		vx, okX := tengo.ToFloat64(args[0])
		vy, okY := tengo.ToFloat64(args[1])
		if !okX || !okY {
			return nil, fmt.Errorf("set_velocity: want numbers, got %s and %s", typeName(args[0]), typeName(args[1]))
		}
		en.VX = vx
		en.VY = vy
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func typeName(obj tengo.Object) string {
	if obj == nil {
		return "nil"
	}
	return strings.ToLower(obj.TypeName())
}
