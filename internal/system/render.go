// internal/system/render.go
package system

import (
	"fmt"
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vector-defense/internal/component"
	"vector-defense/internal/config"
	"vector-defense/internal/defs"
	"vector-defense/internal/entity"
)

// RenderSystem draws the ECS contents. It is the only system that touches
// raylib; the simulation stays headless for tests.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// ToRL converts the palette's color type to raylib's.
func ToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// DrawGrid draws the background grid across the whole playfield.
func (s *RenderSystem) DrawGrid() {
	grid := ToRL(config.ColorGrid)
	for x := int32(-100); x < config.ScreenWidth+100; x += 64 {
		rl.DrawLine(x, -100, x, config.ScreenHeight+100, grid)
	}
	for y := int32(-100); y < config.ScreenHeight+100; y += 64 {
		rl.DrawLine(-100, y, config.ScreenWidth+100, y, grid)
	}
}

// DrawHealthBody renders a polygon whose fill and stroke fade with the
// remaining health ratio.
func DrawHealthBody(pos rl.Vector2, sides int32, radius, healthRatio float32, col rl.Color) {
	if healthRatio > 0.5 {
		rl.DrawPoly(pos, sides, radius, 0, rl.Fade(col, healthRatio*0.4))
	}
	rl.DrawPolyLinesEx(pos, sides, radius, 0, 2.5, rl.Fade(col, healthRatio+0.2))
}

// DrawWorld draws everything inside the camera: particles, ability rings,
// lasers, power-ups, the core, towers, and enemies.
func (s *RenderSystem) DrawWorld() {
	ses := s.ecs.Session

	for id, p := range s.ecs.Particles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		alpha := float32(1.0)
		if p.MaxLife > 0 {
			alpha = float32(p.Life / p.MaxLife)
		}
		rl.DrawCircle(int32(pos.X), int32(pos.Y), 2, rl.Fade(ToRL(p.Color), alpha))
	}

	if ses.EmpRingRadius > 0 {
		alpha := float32(1.0 - ses.EmpRingRadius/config.EmpRingCutoff)
		rl.DrawCircleLines(config.CoreX, config.CoreY, float32(ses.EmpRingRadius), rl.Fade(ToRL(config.ColorPurple), alpha))
	}
	if ses.PulseRingRadius > 0 {
		alpha := float32(1.0 - ses.PulseRingRadius/config.PulseRingCutoff)
		center := rl.NewVector2(config.CoreX, config.CoreY)
		rl.DrawRing(center, float32(ses.PulseRingRadius)-15, float32(ses.PulseRingRadius), 0, 360, 60, rl.Fade(ToRL(config.ColorRed), alpha))
	}

	for _, laser := range s.ecs.Lasers {
		start := rl.NewVector2(float32(laser.FromX), float32(laser.FromY))
		end := rl.NewVector2(float32(laser.ToX), float32(laser.ToY))
		rl.DrawLineEx(start, end, 3.0, ToRL(laser.Color))
	}

	for id, p := range s.ecs.PowerUps {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		var col rl.Color
		switch p.Type {
		case component.PowerEMP:
			col = ToRL(config.ColorPurple)
		case component.PowerOverdrive:
			col = ToRL(config.ColorGold)
		default:
			col = ToRL(config.ColorCyan)
		}
		bob := math.Sin(rl.GetTime()*5) * 5
		center := rl.NewVector2(float32(pos.X), float32(pos.Y+bob))
		rl.DrawPolyLinesEx(center, 4, 18, float32(p.Rotation), 2, col)
	}

	rl.DrawCircleLines(config.CoreX, config.CoreY, config.ExclusionRadius, rl.Fade(ToRL(config.ColorRed), 0.3))
	rl.DrawCircleLines(config.CoreX, config.CoreY, config.CoreRadius, ToRL(config.ColorCyan))
	rl.DrawCircleLines(config.CoreX, config.CoreY, config.CoreRadius-8, ToRL(config.ColorSkyBlue))
	rl.DrawCircle(config.CoreX, config.CoreY, 4, ToRL(config.ColorWhite))

	for id, tower := range s.ecs.Towers {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		def, ok := defs.TowerDefs[tower.DefID]
		if !ok {
			continue
		}
		center := rl.NewVector2(float32(pos.X), float32(pos.Y))
		rl.DrawCircleLines(int32(pos.X), int32(pos.Y), float32(ses.TowerRange), rl.Fade(ToRL(config.ColorWhite), 0.1))
		DrawHealthBody(center, int32(def.Visuals.Sides), 18, 1.0, ToRL(def.Visuals.Color))
	}

	for id, enemy := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		health := s.ecs.Healths[id]
		if pos == nil || health == nil {
			continue
		}
		col := ToRL(config.ColorRed)
		if _, slowed := s.ecs.SlowEffects[id]; slowed {
			col = ToRL(config.ColorSkyBlue)
		}
		ratio := float32(health.Value / health.Max)
		DrawHealthBody(rl.NewVector2(float32(pos.X), float32(pos.Y)), int32(enemy.Sides), float32(enemy.Radius), ratio, col)
	}
}

// DrawHUD draws the header readouts, the notification stack, the threat
// counter, and the damage flash overlay. Buttons are drawn by the states.
func (s *RenderSystem) DrawHUD(selectionName string, selectionColor color.RGBA, threats int) {
	ses := s.ecs.Session

	rl.DrawRectangle(0, 0, config.ScreenWidth, config.UIHeaderHeight, rl.Fade(ToRL(config.ColorBlack), 0.95))

	healthColor := ToRL(config.ColorWhite)
	if ses.CoreHealth < 5 {
		healthColor = ToRL(config.ColorRed)
	}
	rl.DrawText(fmt.Sprintf("INTEGRITY: %d", ses.CoreHealth), 25, 20, 22, healthColor)
	rl.DrawText(fmt.Sprintf("FRAGMENTS: %d", ses.Currency), 220, 20, 22, ToRL(config.ColorGold))
	rl.DrawText(fmt.Sprintf("NODES: %d/%d", len(s.ecs.Towers), ses.MaxTowers), 420, 20, 22, ToRL(config.ColorLime))
	rl.DrawText(fmt.Sprintf("WAVE: %d", ses.WaveNumber), 580, 20, 22, ToRL(config.ColorSkyBlue))
	rl.DrawText(fmt.Sprintf("PULSE: %d", ses.PulseCharges), 720, 20, 22, ToRL(config.ColorCyan))
	rl.DrawText(fmt.Sprintf("ACTIVE MODE: %s", selectionName), config.ScreenWidth-300, 20, 20, ToRL(selectionColor))

	if s.ecs.WaveActive() {
		rl.DrawText(fmt.Sprintf("THREATS REMAINING: %d", threats), 25, config.ScreenHeight-35, 20, ToRL(config.ColorSkyBlue))
	}

	for i, n := range s.ecs.Notifications {
		alpha := float32(n.Timer / 2.0)
		width := rl.MeasureText(n.Text, 30)
		rl.DrawText(n.Text, config.ScreenWidth/2-width/2, int32(110+i*45), 30, rl.Fade(ToRL(n.Color), alpha))
	}

	if ses.DamageFlashTimer > 0 {
		rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, rl.Fade(ToRL(config.ColorRed), float32(ses.DamageFlashTimer)*1.5))
	}
}

// DrawPlacementGhost previews the selected tower under the cursor with its
// range ring, tinted by placement validity.
func (s *RenderSystem) DrawPlacementGhost(mouse rl.Vector2, sides int, bodyColor color.RGBA) {
	ses := s.ecs.Session
	dx := float64(mouse.X) - config.CoreX
	dy := float64(mouse.Y) - config.CoreY
	canPlace := math.Sqrt(dx*dx+dy*dy) > config.ExclusionRadius

	rl.DrawCircleLines(int32(mouse.X), int32(mouse.Y), float32(ses.TowerRange), rl.Fade(ToRL(config.ColorWhite), 0.3))
	col := bodyColor
	if !canPlace {
		col = config.ColorRed
	}
	DrawHealthBody(mouse, int32(sides), 18, 1.0, rl.Fade(ToRL(col), 0.5))
}
