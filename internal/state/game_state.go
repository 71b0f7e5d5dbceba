// internal/state/game_state.go
package state

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vector-defense/internal/app"
	"vector-defense/internal/config"
	"vector-defense/internal/defs"
	"vector-defense/internal/event"
	"vector-defense/internal/system"
	"vector-defense/internal/ui"
)

var _ State = (*GameState)(nil)

// GameState runs the simulation and its gameplay UI. Every other in-game
// screen (upgrade, pause, game over) wraps or follows this state.
type GameState struct {
	sm     *StateMachine
	env    *Env
	game   *app.Game
	render *system.RenderSystem
	camera rl.Camera2D

	pulseBtn  *ui.Button
	armoryBtn *ui.Button
	waveBtn   *ui.Button
}

func NewGameState(sm *StateMachine, env *Env) *GameState {
	dispatcher := event.NewDispatcher()
	env.Audio.Attach(dispatcher)
	game := app.NewGame(env.Settings.Seed, dispatcher)

	s := &GameState{
		sm:     sm,
		env:    env,
		game:   game,
		render: system.NewRenderSystem(game.ECS),
	}
	s.camera = rl.Camera2D{Zoom: 1.0}
	s.pulseBtn = ui.NewButton(25, config.ScreenHeight-120, 230, 50, "", config.ColorSkyBlue)
	s.pulseBtn.FontSize = 18
	s.armoryBtn = ui.NewButton(config.ScreenWidth-550, config.ScreenHeight-72, 250, 60, "OPEN ARMORY [U]", config.ColorGold)
	s.waveBtn = ui.NewButton(config.ScreenWidth-280, config.ScreenHeight-72, 250, 60, "START WAVE", config.ColorLime)
	return s
}

// Game exposes the simulation to wrapping states.
func (s *GameState) Game() *app.Game {
	return s.game
}

func (s *GameState) Enter() {}

func (s *GameState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyOne) {
		s.game.SelectTower(defs.TowerStandard)
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		s.game.SelectTower(defs.TowerCryo)
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		s.game.SelectTower(defs.TowerTesla)
	}
	if rl.IsKeyPressed(rl.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	if rl.IsKeyPressed(rl.KeyU) && s.game.InBuildPhase() {
		s.sm.SetState(NewUpgradeState(s.sm, s))
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		s.game.ActivatePulse()
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !s.mouseOnUI() {
		mouse := rl.GetMousePosition()
		if !s.game.TryPickup(float64(mouse.X), float64(mouse.Y)) {
			s.game.PlaceTower(float64(mouse.X), float64(mouse.Y))
		}
	}

	s.game.Update(deltaTime)

	if s.game.ECS.Session.GameOver {
		s.sm.SetState(NewGameOverState(s.sm, s.env, s))
	}
}

// mouseOnUI reports whether the cursor is over a UI zone that should eat
// world clicks: the header, the build-phase footer, or the pulse button.
func (s *GameState) mouseOnUI() bool {
	mouse := rl.GetMousePosition()
	if mouse.Y < config.UIHeaderHeight {
		return true
	}
	if s.game.InBuildPhase() && mouse.Y > config.ScreenHeight-config.UIFooterHeight {
		return true
	}
	if s.pulseVisible() && s.pulseBtn.Hovered() {
		return true
	}
	return false
}

func (s *GameState) pulseVisible() bool {
	return s.game.ECS.WaveActive() && s.game.ECS.Session.PulseCharges > 0
}

func (s *GameState) Draw() {
	s.DrawScene()
	s.DrawUI()
}

// DrawScene draws the world and HUD without the interactive widgets.
// Wrapping states (pause, armory) use it so clicks on their overlay never
// land on a hidden button.
func (s *GameState) DrawScene() {
	ses := s.game.ECS.Session

	rl.ClearBackground(system.ToRL(config.ColorBlack))

	if ses.ShakeIntensity > 0 {
		shake := int32(ses.ShakeIntensity)
		s.camera.Offset = rl.NewVector2(
			float32(rl.GetRandomValue(-shake, shake)),
			float32(rl.GetRandomValue(-shake, shake)),
		)
	} else {
		s.camera.Offset = rl.NewVector2(0, 0)
	}

	rl.BeginMode2D(s.camera)
	s.render.DrawGrid()
	s.render.DrawWorld()
	if !s.mouseOnUI() && len(s.game.ECS.Towers) < ses.MaxTowers {
		def := defs.TowerDefs[s.game.Selection]
		s.render.DrawPlacementGhost(rl.GetMousePosition(), def.Visuals.Sides, def.Visuals.Color)
	}
	rl.EndMode2D()

	sel := defs.TowerDefs[s.game.Selection]
	s.render.DrawHUD(sel.Name, sel.Visuals.Color, s.game.Threats())
}

// DrawUI draws the interactive widgets.
func (s *GameState) DrawUI() {
	if s.pulseVisible() {
		s.pulseBtn.Label = fmt.Sprintf("ACTIVATE PULSE [%d]", s.game.ECS.Session.PulseCharges)
		if s.pulseBtn.Draw() {
			s.game.ActivatePulse()
		}
	}

	if s.game.InBuildPhase() {
		rl.DrawRectangle(0, config.ScreenHeight-config.UIFooterHeight, config.ScreenWidth, config.UIFooterHeight, rl.Fade(system.ToRL(config.ColorBlack), 0.85))
		rl.DrawText("SYSTEM IDLE // BUILD PHASE", 40, config.ScreenHeight-55, 20, system.ToRL(config.ColorSkyBlue))
		rl.DrawText("PRESS [1] STANDARD | [2] CRYO-SLOW | [3] TESLA-ARC", 40, config.ScreenHeight-75, 18, system.ToRL(config.ColorDarkGray))

		if s.armoryBtn.Draw() {
			s.sm.SetState(NewUpgradeState(s.sm, s))
			return
		}
		if s.waveBtn.Draw() {
			s.game.StartWave()
		}
	}
}

func (s *GameState) Exit() {}
