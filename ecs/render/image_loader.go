package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/rpgplatformer/assets"
)

// LoadImage loads an image from the embedded assets or the filesystem and
// caches it by key.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	img, err := loadImageFromAssetsOrFS(key)
	if err != nil {
		return nil, err
	}
	RegisterImage(key, img)
	return img, nil
}

// MustLoadImage is LoadImage with a placeholder when the image is missing.
func MustLoadImage(key string) *ebiten.Image {
	img, err := LoadImage(key)
	if err == nil {
		return img
	}
	log.Warn("image missing, using placeholder", "key", key, "err", err)
	img = ebiten.NewImageFromImage(assets.Placeholder(16, 16))
	RegisterImage(key, img)
	return img
}

// LoadFrames loads an ordered frame list. Missing frames are skipped.
func LoadFrames(keys []string) []*ebiten.Image {
	frames := make([]*ebiten.Image, 0, len(keys))
	for _, key := range keys {
		img, err := LoadImage(key)
		if err != nil {
			log.Warn("frame missing", "key", key, "err", err)
			continue
		}
		frames = append(frames, img)
	}
	return frames
}

func loadImageFromAssetsOrFS(path string) (*ebiten.Image, error) {
	if img, err := assets.LoadImage(path); err == nil {
		return img, nil
	}
	tried := []string{path, filepath.Join("assets", path)}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			if im, _, err := image.Decode(bytes.NewReader(b)); err == nil {
				return ebiten.NewImageFromImage(im), nil
			}
		}
	}
	return nil, fmt.Errorf("render: load image %s", path)
}
