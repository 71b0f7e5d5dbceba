// internal/state/gameover_state.go
package state

import (
	"fmt"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"vector-defense/internal/config"
	"vector-defense/internal/score"
	"vector-defense/internal/system"
	"vector-defense/internal/ui"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the failure report, records the run on the
// leaderboard and offers a reboot back into a fresh session.
type GameOverState struct {
	sm        *StateMachine
	env       *Env
	gameState *GameState

	name      string
	submitted bool
	board     []score.Entry

	rebootBtn *ui.Button
}

func NewGameOverState(sm *StateMachine, env *Env, gameState *GameState) *GameOverState {
	return &GameOverState{
		sm:        sm,
		env:       env,
		gameState: gameState,
		rebootBtn: ui.NewButton(config.ScreenWidth/2-150, 620, 300, 60, "REBOOT SYSTEM", config.ColorLime),
	}
}

func (g *GameOverState) Enter() {}

func (g *GameOverState) Update(deltaTime float64) {
	if !g.submitted {
		g.readNameInput()
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		g.reboot()
	}
}

func (g *GameOverState) readNameInput() {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if len(g.name) >= config.NameMaxLength {
			break
		}
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			g.name += string(ch)
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(g.name) > 0 {
		g.name = g.name[:len(g.name)-1]
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		g.submit()
	}
}

func (g *GameOverState) submit() {
	ses := g.gameState.Game().ECS.Session
	board, err := g.env.Scores.Append(g.name, ses.Score)
	if err != nil {
		log.Error("recording score", "err", err)
		board = nil
	}
	g.board = score.Top(board, config.LeaderboardTopN)
	g.submitted = true
}

func (g *GameOverState) reboot() {
	g.gameState.Game().Reset()
	g.sm.SetState(g.gameState)
}

func (g *GameOverState) Draw() {
	rl.ClearBackground(rl.NewColor(40, 10, 12, 255))

	ses := g.gameState.Game().ECS.Session
	white := system.ToRL(config.ColorWhite)
	red := system.ToRL(config.ColorRed)
	gold := system.ToRL(config.ColorGold)
	sky := system.ToRL(config.ColorSkyBlue)

	title := "SYSTEM FAILURE"
	width := rl.MeasureText(title, 55)
	rl.DrawText(title, config.ScreenWidth/2-width/2, 60, 55, red)

	var px, py int32 = 120, 180
	rl.DrawText("PERFORMANCE REPORT", px, py, 24, sky)
	rl.DrawText(fmt.Sprintf("FINAL SCORE: %d", ses.Score), px, py+45, 20, white)
	rl.DrawText(fmt.Sprintf("WAVES SURVIVED: %d", ses.WaveNumber), px, py+75, 20, white)
	rl.DrawText(fmt.Sprintf("DATA REMAINING: %d", ses.Currency), px, py+105, 20, white)
	rl.DrawText(fmt.Sprintf("NODE SLOTS: %d", ses.MaxTowers), px, py+135, 20, white)
	rl.DrawText(fmt.Sprintf("FIRE INTERVAL: %.2fs", ses.FireRate), px, py+165, 20, white)

	if !g.submitted {
		g.drawNameEntry(white, gold)
		return
	}
	g.drawLeaderboard(white, gold)

	if g.rebootBtn.Draw() {
		g.reboot()
	}
}

func (g *GameOverState) drawNameEntry(white, gold rl.Color) {
	var px, py int32 = 700, 180
	rl.DrawText("ENTER OPERATOR ID", px, py, 24, gold)
	rl.DrawRectangleLines(px, py+45, 320, 50, white)
	cursor := "_"
	if len(g.name) >= config.NameMaxLength {
		cursor = ""
	}
	rl.DrawText(g.name+cursor, px+15, py+58, 26, white)
	rl.DrawText("PRESS [ENTER] TO LOG", px, py+115, 18, rl.Fade(white, 0.6))
}

func (g *GameOverState) drawLeaderboard(white, gold rl.Color) {
	var px, py int32 = 700, 180
	rl.DrawText("HALL OF OPERATORS", px, py, 24, gold)
	if len(g.board) == 0 {
		rl.DrawText("NO RECORDS ON FILE", px, py+45, 20, rl.Fade(white, 0.6))
		return
	}
	for i, entry := range g.board {
		line := fmt.Sprintf("%2d. %-12s %d", i+1, entry.Name, entry.Score)
		col := white
		if entry.Name == g.name || (g.name == "" && entry.Name == "ANON") {
			col = gold
		}
		rl.DrawText(line, px, py+45+int32(i)*32, 20, col)
	}
}

func (g *GameOverState) Exit() {}
