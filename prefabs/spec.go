package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CharacterSpec describes one playable character.
type CharacterSpec struct {
	Name    string       `yaml:"name"`
	Ability string       `yaml:"ability"`
	Attack  string       `yaml:"attack"`
	Walk    FrameSetSpec `yaml:"walk"`
	Climb   FrameSetSpec `yaml:"climb"`
}

// FrameSetSpec lists animation frames either explicitly or as a printf
// pattern over an inclusive index range.
type FrameSetSpec struct {
	Frames  []string `yaml:"frames"`
	Pattern string   `yaml:"pattern"`
	From    int      `yaml:"from"`
	To      int      `yaml:"to"`
}

// Paths expands the frame set into asset paths.
func (f FrameSetSpec) Paths() []string {
	if len(f.Frames) > 0 {
		return append([]string(nil), f.Frames...)
	}
	if f.Pattern == "" || f.To < f.From {
		return nil
	}
	out := make([]string, 0, f.To-f.From+1)
	for i := f.From; i <= f.To; i++ {
		out = append(out, fmt.Sprintf(f.Pattern, i))
	}
	return out
}

func LoadCharacterSpec(name string) (CharacterSpec, error) {
	spec, err := LoadSpec[CharacterSpec](name + ".yaml")
	if err != nil {
		return spec, err
	}
	if spec.Name == "" {
		spec.Name = name
	}
	switch spec.Ability {
	case "", "climb", "dash", "float":
	default:
		return spec, fmt.Errorf("prefabs: character %s: unknown ability %q", name, spec.Ability)
	}
	return spec, nil
}
