// internal/state/upgrade_state.go
package state

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vector-defense/internal/config"
	"vector-defense/internal/system"
	"vector-defense/internal/ui"
)

var _ State = (*UpgradeState)(nil)

// UpgradeState is the armory overlay. It draws the frozen game underneath
// and spends session currency on permanent upgrades.
type UpgradeState struct {
	sm        *StateMachine
	gameState *GameState

	slotBtn    *ui.Button
	pulseBtn   *ui.Button
	clockBtn   *ui.Button
	repairBtn  *ui.Button
	teslaBtn   *ui.Button
	dismissBtn *ui.Button
}

func NewUpgradeState(sm *StateMachine, gameState *GameState) *UpgradeState {
	const bx = config.ScreenWidth/2 - 200
	u := &UpgradeState{
		sm:        sm,
		gameState: gameState,
	}
	u.slotBtn = ui.NewButton(bx, 180, 400, 65, "", config.ColorLime)
	u.pulseBtn = ui.NewButton(bx, 260, 400, 65, "", config.ColorRed)
	u.clockBtn = ui.NewButton(bx, 340, 400, 65, "", config.ColorGold)
	u.repairBtn = ui.NewButton(bx, 420, 400, 65, "", config.ColorSkyBlue)
	u.teslaBtn = ui.NewButton(bx, 500, 400, 65, "", config.ColorPurple)
	u.dismissBtn = ui.NewButton(bx, 620, 400, 50, "RESUME OPERATIONS [U]", config.ColorWhite)
	return u
}

func (u *UpgradeState) Enter() {}

func (u *UpgradeState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyU) || rl.IsKeyPressed(rl.KeyEnter) {
		u.sm.SetState(u.gameState)
	}
}

func (u *UpgradeState) Draw() {
	u.gameState.DrawScene()
	rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, rl.Fade(system.ToRL(config.ColorBlack), 0.9))

	game := u.gameState.Game()
	ses := game.ECS.Session

	title := "SYSTEM ARMORY"
	width := rl.MeasureText(title, 45)
	rl.DrawText(title, config.ScreenWidth/2-width/2, 70, 45, system.ToRL(config.ColorGold))
	funds := fmt.Sprintf("AVAILABLE DATA: %d", ses.Currency)
	width = rl.MeasureText(funds, 24)
	rl.DrawText(funds, config.ScreenWidth/2-width/2, 130, 24, system.ToRL(config.ColorWhite))

	u.slotBtn.Label = fmt.Sprintf("BUY NODE SLOT [%d]", game.SlotCost())
	if u.slotBtn.Draw() {
		game.BuySlot()
	}
	u.pulseBtn.Label = fmt.Sprintf("PULSE CHARGE [%d]", config.PulseChargeCost)
	if u.pulseBtn.Draw() {
		game.BuyPulseCharge()
	}
	u.clockBtn.Label = fmt.Sprintf("OVERCLOCK FIRE [%d]", game.OverclockCost())
	if u.clockBtn.Draw() {
		game.BuyOverclock()
	}
	u.repairBtn.Label = fmt.Sprintf("CORE REPAIR [%d]", config.RepairCost)
	if u.repairBtn.Draw() {
		game.BuyRepair()
	}
	if !ses.TeslaUnlocked {
		u.teslaBtn.Label = fmt.Sprintf("UNLOCK TESLA-ARC [%d]", config.TeslaUnlockCost)
		if u.teslaBtn.Draw() {
			game.BuyTeslaUnlock()
		}
	}

	if u.dismissBtn.Draw() {
		u.sm.SetState(u.gameState)
	}
}

func (u *UpgradeState) Exit() {}
