package levels

import (
	"strings"
	"testing"
)

func TestEmbeddedLevelsValidate(t *testing.T) {
	names, err := List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 embedded levels, got %v", names)
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			lvl, err := LoadLevelFromFS(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if err := Validate(lvl); err != nil {
				t.Fatalf("validate: %v", err)
			}
			x, y, ok := lvl.Spawn()
			if !ok {
				t.Fatal("no spawn")
			}
			if x <= 0 || y <= 0 || x >= lvl.PixelWidth() || y >= lvl.PixelHeight() {
				t.Fatalf("spawn (%v,%v) outside level", x, y)
			}
			for i, e := range lvl.Entities {
				p, err := e.Enemy()
				if err != nil {
					t.Fatalf("entity %d: %v", i, err)
				}
				if e.X < p.Left || e.X > p.Right || e.Y < p.Top || e.Y > p.Bottom {
					t.Errorf("entity %d starts outside its patrol box", i)
				}
			}
		})
	}
}

func TestLastLevelHasNoExit(t *testing.T) {
	lvl, err := LoadLevelFromFS("level3.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(lvl.LayersOf(KindExit)) != 0 {
		t.Fatal("final level is won by clearing enemies, not by an exit")
	}
	if len(lvl.Entities) == 0 {
		t.Fatal("final level needs enemies")
	}
}

func TestValidateReportsProblems(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "no_start",
			doc:  `{"name":"x","width":4,"height":4,"tile_size":32,"layers":[]}`,
			want: "no start rect",
		},
		{
			name: "bad_size",
			doc:  `{"name":"x","width":0,"height":4,"tile_size":32,"layers":[{"name":"s","kind":"start","rects":[{"x":0,"y":0,"w":1,"h":1}]}]}`,
			want: "must be positive",
		},
		{
			name: "rect_out_of_bounds",
			doc:  `{"name":"x","width":4,"height":4,"tile_size":32,"layers":[{"name":"s","kind":"start","rects":[{"x":3,"y":3,"w":2,"h":1}]}]}`,
			want: "out of bounds",
		},
		{
			name: "unknown_kind",
			doc:  `{"name":"x","width":4,"height":4,"tile_size":32,"layers":[{"name":"s","kind":"start","rects":[{"x":0,"y":0,"w":1,"h":1}]},{"name":"w","kind":"water","rects":[]}]}`,
			want: "unknown kind",
		},
		{
			name: "inverted_patrol",
			doc: `{"name":"x","width":4,"height":4,"tile_size":32,"layers":[{"name":"s","kind":"start","rects":[{"x":0,"y":0,"w":1,"h":1}]}],
				"entities":[{"type":"enemy","x":0,"y":0,"props":{"prefab":"boxing_ghost.yaml","left":10,"right":0}}]}`,
			want: "patrol bounds",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl, err := Parse([]byte(tc.doc))
			if err != nil {
				t.Fatal(err)
			}
			err = Validate(lvl)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestEnemyPropsRejectsOtherTypes(t *testing.T) {
	_, err := Entity{Type: "coin"}.Enemy()
	if err == nil || !strings.Contains(err.Error(), "not an enemy") {
		t.Fatalf("expected not-an-enemy error, got %v", err)
	}
}
