package levels

import (
	"errors"
	"fmt"
)

var knownKinds = map[string]bool{
	KindPlatforms:  true,
	KindClimbable:  true,
	KindDanger:     true,
	KindExit:       true,
	KindCheckpoint: true,
	KindStart:      true,
	KindDecor:      true,
}

// Validate returns every problem found in the level joined into one error.
func Validate(l *Level) error {
	if l == nil {
		return errors.New("levels: nil level")
	}
	var errs []error
	if l.Width <= 0 || l.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", l.Width, l.Height))
	}
	if l.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile_size %d must be positive", l.TileSize))
	}

	starts := 0
	for li, layer := range l.Layers {
		if !knownKinds[layer.Kind] {
			errs = append(errs, fmt.Errorf("layer %d (%s): unknown kind %q", li, layer.Name, layer.Kind))
		}
		for ri, r := range layer.Rects {
			if r.W <= 0 || r.H <= 0 || r.X < 0 || r.Y < 0 || r.X+r.W > l.Width || r.Y+r.H > l.Height {
				errs = append(errs, fmt.Errorf("layer %s rect %d %+v out of bounds", layer.Name, ri, r))
			}
		}
		if layer.Kind == KindStart {
			starts += len(layer.Rects)
		}
	}
	if starts == 0 {
		errs = append(errs, errors.New("no start rect"))
	}

	for i, e := range l.Entities {
		if e.Type != "enemy" {
			continue
		}
		p, err := e.Enemy()
		if err != nil {
			errs = append(errs, fmt.Errorf("entity %d: %w", i, err))
			continue
		}
		if p.Left > p.Right || p.Top > p.Bottom {
			errs = append(errs, fmt.Errorf("entity %d: patrol bounds left=%v right=%v top=%v bottom=%v", i, p.Left, p.Right, p.Top, p.Bottom))
		}
		if p.Prefab == "" {
			errs = append(errs, fmt.Errorf("entity %d: enemy without prefab", i))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("levels: %s: %w", l.Name, errors.Join(errs...))
}
