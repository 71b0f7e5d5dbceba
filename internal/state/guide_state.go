// internal/state/guide_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"vector-defense/internal/config"
	"vector-defense/internal/ui"
)

var _ State = (*GuideState)(nil)

// GuideState is the static help screen.
type GuideState struct {
	sm        *StateMachine
	env       *Env
	returnBtn *ui.Button
}

func NewGuideState(sm *StateMachine, env *Env) *GuideState {
	return &GuideState{
		sm:        sm,
		env:       env,
		returnBtn: ui.NewButton(config.ScreenWidth/2-100, 620, 200, 50, "< RETURN", config.ColorWhite),
	}
}

func (g *GuideState) Enter() {}

func (g *GuideState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyBackspace) {
		g.sm.SetState(NewMenuState(g.sm, g.env))
	}
}

func (g *GuideState) Draw() {
	rl.ClearBackground(rl.NewColor(config.ColorBlack.R, config.ColorBlack.G, config.ColorBlack.B, 255))

	white := rl.NewColor(config.ColorWhite.R, config.ColorWhite.G, config.ColorWhite.B, 255)
	gold := rl.NewColor(config.ColorGold.R, config.ColorGold.G, config.ColorGold.B, 255)
	red := rl.NewColor(config.ColorRed.R, config.ColorRed.G, config.ColorRed.B, 255)
	lime := rl.NewColor(config.ColorLime.R, config.ColorLime.G, config.ColorLime.B, 255)
	cyan := rl.NewColor(config.ColorCyan.R, config.ColorCyan.G, config.ColorCyan.B, 255)
	purple := rl.NewColor(config.ColorPurple.R, config.ColorPurple.G, config.ColorPurple.B, 255)
	sky := rl.NewColor(config.ColorSkyBlue.R, config.ColorSkyBlue.G, config.ColorSkyBlue.B, 255)

	rl.DrawText("SYSTEM OPERATIONAL GUIDE", 60, 60, 35, sky)
	var x1, x2, y int32 = 70, 650, 140

	rl.DrawText("THREAT LOG", x1, y, 22, red)
	rl.DrawText("- Splitting: Complex shapes split into fragments.", x1, y+35, 18, white)
	rl.DrawText("- BOSS LOG: Heavy Primes emerge every 10 waves.", x1, y+60, 18, gold)

	rl.DrawText("DEFENSE LOG", x1, y+130, 22, lime)
	rl.DrawText("- [1] Standard: Green squares. High fire damage.", x1, y+165, 18, white)
	rl.DrawText("- [2] Cryo-Slow: Blue hexagons. Freezes threats.", x1, y+190, 18, white)
	rl.DrawText("- [3] Tesla-Arc: Purple prisms. Chain lightning.", x1, y+215, 18, purple)
	rl.DrawText("- Zone: Building forbidden inside red core heart.", x1, y+240, 18, white)

	rl.DrawText("POWER-UPS", x2, y, 22, gold)
	rl.DrawText("- [EMP] Purple: Total movement lock-down.", x2, y+35, 18, purple)
	rl.DrawText("- [OVERDRIVE] Gold: Maximum fire-rate sparks.", x2, y+60, 18, gold)
	rl.DrawText("- [NANOBOTS] Cyan: Core absorption repair.", x2, y+85, 18, sky)

	rl.DrawText("SYSTEM CYCLE", x2, y+155, 22, cyan)
	rl.DrawText("- [SPACE/Button]: Discharge Red Pulse charges.", x2, y+190, 18, white)
	rl.DrawText("- Armory [U]: Upgrade slots and laser fire speed.", x2, y+215, 18, white)
	rl.DrawText("- Time: Power-up timers freeze during build phase.", x2, y+240, 18, gold)

	if g.returnBtn.Draw() {
		g.sm.SetState(NewMenuState(g.sm, g.env))
	}
}

func (g *GuideState) Exit() {}
