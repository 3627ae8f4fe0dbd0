package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/milk9111/rpgplatformer/common"
)

//go:embed *.json
var LevelsFS embed.FS

// Layer kinds understood by the level builder.
const (
	KindPlatforms  = "platforms"
	KindClimbable  = "climbable"
	KindDanger     = "danger"
	KindExit       = "exit"
	KindCheckpoint = "checkpoint"
	KindStart      = "start"
	KindDecor      = "decor"
)

// Level is a rectangle-based level document. Sizes and rects are in tiles;
// entity positions are in pixels with y growing down.
type Level struct {
	Name       string   `json:"name"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	TileSize   int      `json:"tile_size"`
	Background string   `json:"background,omitempty"`
	Layers     []Layer  `json:"layers"`
	Entities   []Entity `json:"entities,omitempty"`
}

type Layer struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Tile  string `json:"tile,omitempty"`
	Rects []Rect `json:"rects"`
}

type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type Entity struct {
	Type  string         `json:"type"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

// EnemyProps are the patrol settings of an "enemy" entity.
type EnemyProps struct {
	Prefab string  `json:"prefab"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	SpeedX float64 `json:"speed_x"`
	SpeedY float64 `json:"speed_y"`
}

func (e Entity) Enemy() (EnemyProps, error) {
	var props EnemyProps
	if e.Type != "enemy" {
		return props, fmt.Errorf("levels: entity %q is not an enemy", e.Type)
	}
	b, err := json.Marshal(e.Props)
	if err != nil {
		return props, fmt.Errorf("levels: enemy props: %w", err)
	}
	if err := json.Unmarshal(b, &props); err != nil {
		return props, fmt.Errorf("levels: enemy props: %w", err)
	}
	return props, nil
}

// PixelWidth returns the level width in pixels.
func (l *Level) PixelWidth() float64 { return float64(l.Width * l.TileSize) }

// PixelHeight returns the level height in pixels.
func (l *Level) PixelHeight() float64 { return float64(l.Height * l.TileSize) }

// BackgroundColor returns the clear colour, black when unset or malformed.
func (l *Level) BackgroundColor() color.Color {
	c, err := common.ParseHexColor(l.Background)
	if err != nil {
		return color.Black
	}
	return c
}

// LayersOf returns every layer of the given kind in document order.
func (l *Level) LayersOf(kind string) []Layer {
	var out []Layer
	for _, layer := range l.Layers {
		if layer.Kind == kind {
			out = append(out, layer)
		}
	}
	return out
}

// Spawn returns the pixel centre of the first start rect.
func (l *Level) Spawn() (x, y float64, ok bool) {
	for _, layer := range l.LayersOf(KindStart) {
		if len(layer.Rects) == 0 {
			continue
		}
		r := layer.Rects[0]
		ts := float64(l.TileSize)
		return (float64(r.X) + float64(r.W)/2) * ts, (float64(r.Y) + float64(r.H)/2) * ts, true
	}
	return 0, 0, false
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(data)
}

// LoadFile reads a level from disk, for authoring outside the binary.
func LoadFile(filename string) (*Level, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", filename, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	return &lvl, nil
}

// List returns the embedded level file names, sorted.
func List() ([]string, error) {
	names, err := fs.Glob(LevelsFS, "*.json")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
