package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

const (
	debugCircleSegments = 20
	debugDotSize        = 4
)

// DrawPhysicsDebug outlines every chipmunk shape through the camera.
func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}
	camX, camY, zoom := CameraTransform(w)
	cp.DrawSpace(space, &physicsDebugDrawer{screen: screen, camX: camX, camY: camY, zoom: zoom})
}

// PlayerDebugText summarises the player's movement state for the overlay.
func PlayerDebugText(w *ecs.World) string {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return "no player"
	}
	name := "none"
	if roster, ok := ecs.Get(w, player, component.RosterComponent.Kind()); ok {
		if c := roster.Active(); c != nil {
			name = c.Name
		}
	}
	var ab component.Abilities
	if a, ok := ecs.Get(w, player, component.AbilitiesComponent.Kind()); ok {
		ab = *a
	}
	x, y, vx, vy := 0.0, 0.0, 0.0, 0.0
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		x, y = t.X, t.Y
	}
	if b, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok {
		vx, vy = b.VX, b.VY
	}
	hp := 0
	if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
		hp = h.Current
	}
	return fmt.Sprintf(
		"Character: %s\nPos: %.1f, %.1f\nVel: %.2f, %.2f\nGrounded: %v\nClimbing: %v Floating: %v Dashing: %v\nAttacking: %v\nHealth: %d\nInvulnerable: %v",
		name, x, y, vx, vy, grounded(w, player),
		ab.Climbing, ab.Floating, ab.Dashing, ab.Attacking,
		hp, ecs.Has(w, player, component.InvulnerableComponent.Kind()),
	)
}

// DrawPlayerDebug prints PlayerDebugText in the top-left corner below the HUD.
func DrawPlayerDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, PlayerDebugText(w), 10, 80)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	camX   float64
	camY   float64
	zoom   float64
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	d.drawCircle(a, radius, outline)
	d.drawCircle(b, radius, outline)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		d.drawLine(verts[i], verts[(i+1)%count], outline)
	}
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 1}
}

// ShapeColor tells sensors, level geometry and the player body apart.
func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape == nil {
		return cp.FColor{R: 1, G: 1, B: 1, A: 1}
	}
	if shape.Sensor() {
		return cp.FColor{R: 1, G: 0.85, B: 0.2, A: 1}
	}
	if shape.Body() != nil && shape.Body().GetType() == cp.BODY_STATIC {
		return cp.FColor{R: 0.4, G: 0.7, B: 1, A: 1}
	}
	return cp.FColor{R: 0.9, G: 0.4, B: 0.9, A: 1}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.1, B: 0.1, A: 1}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, 1, fcolorToRGBA(c), false)
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	prev := cp.Vector{X: center.X + radius, Y: center.Y}
	for i := 1; i <= debugCircleSegments; i++ {
		th := float64(i) * (2 * math.Pi / debugCircleSegments)
		cur := cp.Vector{X: center.X + math.Cos(th)*radius, Y: center.Y + math.Sin(th)*radius}
		d.drawLine(prev, cur, c)
		prev = cur
	}
}

func (d *physicsDebugDrawer) toScreen(v cp.Vector) (float32, float32) {
	return float32((v.X - d.camX) * d.zoom), float32((v.Y - d.camY) * d.zoom)
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
