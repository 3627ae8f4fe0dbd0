package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab made of named component blocks.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes one raw component block into its typed spec.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image      string  `yaml:"image"`
	OriginX    float64 `yaml:"origin_x"`
	OriginY    float64 `yaml:"origin_y"`
	FacingLeft bool    `yaml:"facing_left"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type PhysicsBodyComponentSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	Static     bool    `yaml:"static"`
}

type GravityScaleComponentSpec struct {
	Scale *float64 `yaml:"scale"`
}

// BoxComponentSpec is shared by hurtboxes and hitboxes. A zero size means
// "use the sprite bounds".
type BoxComponentSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type HealthComponentSpec struct {
	Max int `yaml:"max"`
}

type ProjectileComponentSpec struct {
	Kind           string  `yaml:"kind"`
	Damage         int     `yaml:"damage"`
	Speed          float64 `yaml:"speed"`
	OffsetX        float64 `yaml:"offset_x"`
	OffsetY        float64 `yaml:"offset_y"`
	Order          int     `yaml:"order"`
	StopOnPlatform bool    `yaml:"stop_on_platform"`
	CullMargin     float64 `yaml:"cull_margin"`
}

// TTLComponentSpec is given in seconds and converted to ticks on build.
type TTLComponentSpec struct {
	Seconds float64 `yaml:"seconds"`
}

type FlickerComponentSpec struct {
	Frames  []string `yaml:"frames"`
	Seconds float64  `yaml:"seconds"`
}

type PatrolScriptComponentSpec struct {
	Path string `yaml:"path"`
}

type AnimationComponentSpec struct {
	StepDistance float64 `yaml:"step_distance"`
}

type RosterComponentSpec struct {
	Characters []string `yaml:"characters"`
}
