package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

var instructionLines = []string{
	"CONTROLS:",
	"A/D or Arrows - Move",
	"W/Up - Jump",
	"1 / 2 / 3 - Switch to Archer / Knight / Wizard",
	"E - Attack",
	"Space - Character ability",
	"ARCHER - Ability: Dash, Attack: Arrow",
	"KNIGHT - Ability: Climb, Attack: Forward Slash",
	"WIZARD - Ability: Levitate, Attack: Fire",
	"Hint 1: You can only levitate from the ground.",
	"Hint 2: You don't fall while dashing.",
	"Hint 3: You don't fall while climbing a wall.",
	"Bonus hint: Defeat every enemy on the last level to win!",
	"ESC - Reset position",
	"P - Pause",
	"I - Toggle instructions",
}

const (
	instructionsX          = 10
	instructionsY          = 80
	instructionsWidth      = 640
	instructionsLineHeight = 22
)

// HUD draws the text layers above the world: the instructions overlay, the
// level status line and the victory banner.
type HUD struct {
	body   text.Face
	banner text.Face
	small  text.Face
}

func NewHUD() (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	return &HUD{
		body:   &text.GoTextFace{Source: src, Size: 14},
		banner: &text.GoTextFace{Source: src, Size: 72},
		small:  text.NewGoXFace(basicfont.Face7x13),
	}, nil
}

func (h *HUD) DrawInstructions(screen *ebiten.Image) {
	height := float32(len(instructionLines)*instructionsLineHeight + 20)
	vector.FillRect(screen, instructionsX, instructionsY, instructionsWidth, height, color.RGBA{A: 180}, false)

	for i, line := range instructionLines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(instructionsX+10, float64(instructionsY+10+i*instructionsLineHeight))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, h.body, op)
	}
}

// DrawStatus prints the level name and active character in the top right.
func (h *HUD) DrawStatus(w *ecs.World, screen *ebiten.Image) {
	label := statusLine(w)
	if label == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-20), 20)
	op.PrimaryAlign = text.AlignEnd
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, label, h.small, op)
}

func (h *HUD) DrawVictory(screen *ebiten.Image) {
	b := screen.Bounds()
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.Dx())/2, float64(b.Dy())/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(colornames.Yellow)
	text.Draw(screen, "VICTORY!", h.banner, op)
}

func statusLine(w *ecs.World) string {
	stateEnt, ok := ecs.First(w, component.GameStateComponent.Kind())
	if !ok {
		return ""
	}
	state, _ := ecs.Get(w, stateEnt, component.GameStateComponent.Kind())
	line := fmt.Sprintf("%s (%d/%d)", state.LevelName, state.LevelIndex+1, state.LevelCount)

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return line
	}
	if roster, ok := ecs.Get(w, player, component.RosterComponent.Kind()); ok {
		if char := roster.Active(); char != nil {
			line += "  " + char.Name
		}
	}
	return line
}
