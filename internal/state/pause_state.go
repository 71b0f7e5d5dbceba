// internal/state/pause_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"vector-defense/internal/config"
	"vector-defense/internal/system"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the gameplay screen and dims it.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (p *PauseState) Enter() {}

func (p *PauseState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyEscape) {
		p.sm.SetState(p.previous)
	}
}

func (p *PauseState) Draw() {
	p.previous.DrawScene()
	rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, rl.Fade(system.ToRL(config.ColorBlack), 0.5))

	text := "PAUSED"
	width := rl.MeasureText(text, 40)
	rl.DrawText(text, config.ScreenWidth/2-width/2, config.ScreenHeight/2-20, 40, system.ToRL(config.ColorWhite))
	hint := "PRESS [P] TO RESUME"
	width = rl.MeasureText(hint, 20)
	rl.DrawText(hint, config.ScreenWidth/2-width/2, config.ScreenHeight/2+35, 20, system.ToRL(config.ColorDarkGray))
}

func (p *PauseState) Exit() {}
