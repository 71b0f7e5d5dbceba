// internal/state/menu_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"vector-defense/internal/config"
	"vector-defense/internal/ui"
)

var _ State = (*MenuState)(nil)

// menuShape is an ambient polygon drifting up the start screen.
type menuShape struct {
	pos      rl.Vector2
	speed    float32
	rotation float32
	rotSpeed float32
	sides    int32
	size     float32
}

// MenuState is the start screen.
type MenuState struct {
	sm     *StateMachine
	env    *Env
	shapes []menuShape

	bootBtn  *ui.Button
	guideBtn *ui.Button
}

func NewMenuState(sm *StateMachine, env *Env) *MenuState {
	m := &MenuState{sm: sm, env: env}
	for i := 0; i < 20; i++ {
		m.shapes = append(m.shapes, menuShape{
			pos: rl.NewVector2(
				float32(rl.GetRandomValue(0, config.ScreenWidth)),
				float32(rl.GetRandomValue(0, config.ScreenHeight)),
			),
			speed:    float32(rl.GetRandomValue(40, 100)) / 100.0,
			rotation: float32(rl.GetRandomValue(0, 360)),
			rotSpeed: float32(rl.GetRandomValue(-20, 20)) / 10.0,
			sides:    rl.GetRandomValue(3, 8),
			size:     float32(rl.GetRandomValue(30, 120)),
		})
	}
	m.bootBtn = ui.NewButton(config.ScreenWidth/2-150, 380, 300, 65, "BOOT SEQUENCE", config.ColorLime)
	m.guideBtn = ui.NewButton(config.ScreenWidth/2-150, 465, 300, 65, "SYSTEM GUIDE", config.ColorWhite)
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	for i := range m.shapes {
		s := &m.shapes[i]
		s.pos.Y -= s.speed
		s.rotation += s.rotSpeed
		if s.pos.Y < -s.size {
			s.pos.Y = config.ScreenHeight + s.size
			s.pos.X = float32(rl.GetRandomValue(0, config.ScreenWidth))
		}
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		m.startGame()
	}
}

func (m *MenuState) Draw() {
	rl.ClearBackground(rl.NewColor(config.ColorBlack.R, config.ColorBlack.G, config.ColorBlack.B, 255))

	dark := rl.NewColor(config.ColorDarkGray.R, config.ColorDarkGray.G, config.ColorDarkGray.B, 255)
	for _, s := range m.shapes {
		rl.DrawPolyLinesEx(s.pos, s.sides, s.size, s.rotation, 1.5, rl.Fade(dark, 0.4))
	}

	title := "VECTOR DEFENSE"
	width := rl.MeasureText(title, 60)
	rl.DrawText(title, config.ScreenWidth/2-width/2, 240, 60, rl.NewColor(config.ColorCyan.R, config.ColorCyan.G, config.ColorCyan.B, 255))
	rl.DrawRectangle(config.ScreenWidth/2-120, 315, 240, 2, rl.NewColor(config.ColorSkyBlue.R, config.ColorSkyBlue.G, config.ColorSkyBlue.B, 255))

	if m.bootBtn.Draw() {
		m.startGame()
	}
	if m.guideBtn.Draw() {
		m.sm.SetState(NewGuideState(m.sm, m.env))
	}
}

func (m *MenuState) startGame() {
	m.sm.SetState(NewGameState(m.sm, m.env))
}

func (m *MenuState) Exit() {}
