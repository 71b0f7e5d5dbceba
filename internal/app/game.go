// internal/app/game.go
package app

import (
	"github.com/charmbracelet/log"

	"vector-defense/internal/component"
	"vector-defense/internal/config"
	"vector-defense/internal/defs"
	"vector-defense/internal/entity"
	"vector-defense/internal/event"
	"vector-defense/internal/system"
	"vector-defense/internal/utils"
)

// Game is the simulation aggregate: it owns the ECS, wires the systems, and
// exposes the player commands the input layer calls. It has no rendering
// dependency; the render system and the states read its state each frame.
type Game struct {
	ECS        *entity.ECS
	Rng        *utils.PRNGService
	Dispatcher *event.Dispatcher

	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	StatusEffectSystem *system.StatusEffectSystem
	AbilitySystem      *system.AbilitySystem
	LifecycleSystem    *system.LifecycleSystem

	// Selection is the tower type the next placement uses.
	Selection string
}

// NewGame wires a fresh simulation. A seed of 0 means time-based; tests pass
// a fixed seed for determinism. The dispatcher may be shared with sinks
// (audio, logging) subscribed by the caller; pass nil for a private one.
func NewGame(seed int64, dispatcher *event.Dispatcher) *Game {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	ecs := entity.NewECS()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:        ecs,
		Rng:        rng,
		Dispatcher: dispatcher,
		Selection:  defs.TowerStandard,
	}
	g.WaveSystem = system.NewWaveSystem(ecs, rng, dispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, rng, dispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.AbilitySystem = system.NewAbilitySystem(ecs, rng, dispatcher)
	g.LifecycleSystem = system.NewLifecycleSystem(ecs, rng, dispatcher)
	return g
}

// Update runs one frame of the simulation. Order matters: combat marks
// kills, the sweep removes them, and only then may the wave finish.
func (g *Game) Update(deltaTime float64) {
	ses := g.ECS.Session
	if ses.GameOver {
		return
	}

	g.StatusEffectSystem.Update(deltaTime)
	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.LifecycleSystem.Update(deltaTime)
	g.WaveSystem.FinishIfCleared()
	g.AbilitySystem.Update(deltaTime)

	if ses.CoreHealth <= 0 {
		ses.GameOver = true
		log.Info("core destroyed", "wave", ses.WaveNumber, "score", ses.Score)
		g.Dispatcher.Dispatch(event.Event{Type: event.GameOver, Data: ses.Score})
	}
}

// StartWave launches the next wave from the build phase.
func (g *Game) StartWave() {
	if g.ECS.WaveActive() || len(g.ECS.Enemies) > 0 {
		return
	}
	g.WaveSystem.StartWave()
}

// InBuildPhase reports whether the player is between waves.
func (g *Game) InBuildPhase() bool {
	return !g.ECS.WaveActive() && len(g.ECS.Enemies) == 0
}

// SelectTower switches the placement selection. Locked types are rejected.
func (g *Game) SelectTower(defID string) bool {
	def, ok := defs.TowerDefs[defID]
	if !ok {
		return false
	}
	if def.UnlockCost > 0 && !g.ECS.Session.TeslaUnlocked {
		return false
	}
	g.Selection = defID
	return true
}

// PlaceTower drops a node of the selected type at the given point, if the
// slot limit allows and the point is outside the core exclusion zone.
func (g *Game) PlaceTower(x, y float64) bool {
	ses := g.ECS.Session
	if len(g.ECS.Towers) >= ses.MaxTowers {
		return false
	}
	if utils.Distance(x, y, config.CoreX, config.CoreY) <= config.ExclusionRadius {
		return false
	}
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &component.Tower{DefID: g.Selection}
	g.Dispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: g.Selection})
	return true
}

// TryPickup collects the first active power-up within pickup range of the
// click point. Returns false when nothing was picked up.
func (g *Game) TryPickup(x, y float64) bool {
	for id, p := range g.ECS.PowerUps {
		if !p.Active {
			continue
		}
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		if utils.Distance(x, y, pos.X, pos.Y) < config.PowerUpPickupDist {
			return g.AbilitySystem.Collect(id)
		}
	}
	return false
}

// ActivatePulse fires the pulse ability if a charge is available and a wave
// is running.
func (g *Game) ActivatePulse() bool {
	return g.AbilitySystem.ActivatePulse()
}

// Threats returns live enemies plus everything still scheduled to spawn.
func (g *Game) Threats() int {
	return g.WaveSystem.ThreatsRemaining()
}

// --- Armory purchases. Insufficient currency is a silent no-op. ---

// SlotCost is the price of the next node slot.
func (g *Game) SlotCost() int {
	return config.SlotBaseCost + (g.ECS.Session.MaxTowers-config.BaseMaxTowers)*config.SlotCostStep
}

// OverclockCost is the price of the next fire-rate upgrade.
func (g *Game) OverclockCost() int {
	return config.OverclockBaseCost + int((config.BaseFireRate-g.ECS.Session.FireRate)*10000)
}

func (g *Game) BuySlot() bool {
	ses := g.ECS.Session
	cost := g.SlotCost()
	if ses.Currency < cost {
		return false
	}
	ses.Currency -= cost
	ses.MaxTowers++
	return true
}

func (g *Game) BuyPulseCharge() bool {
	ses := g.ECS.Session
	if ses.Currency < config.PulseChargeCost {
		return false
	}
	ses.Currency -= config.PulseChargeCost
	ses.PulseCharges++
	return true
}

func (g *Game) BuyOverclock() bool {
	ses := g.ECS.Session
	cost := g.OverclockCost()
	if ses.Currency < cost {
		return false
	}
	ses.Currency -= cost
	ses.FireRate *= config.OverclockFactor
	return true
}

func (g *Game) BuyRepair() bool {
	ses := g.ECS.Session
	if ses.Currency < config.RepairCost || ses.CoreHealth >= ses.MaxCoreHealth {
		return false
	}
	ses.Currency -= config.RepairCost
	ses.CoreHealth += config.RepairAmount
	if ses.CoreHealth > ses.MaxCoreHealth {
		ses.CoreHealth = ses.MaxCoreHealth
	}
	return true
}

func (g *Game) BuyTeslaUnlock() bool {
	ses := g.ECS.Session
	if ses.TeslaUnlocked || ses.Currency < config.TeslaUnlockCost {
		return false
	}
	ses.Currency -= config.TeslaUnlockCost
	ses.TeslaUnlocked = true
	return true
}

// Reset restores the initial session and clears every collection. The ECS
// pointer is kept so the wired systems survive the reboot.
func (g *Game) Reset() {
	g.ECS.Reset()
	g.Selection = defs.TowerStandard
	log.Debug("simulation reset")
}
