// internal/system/combat.go
package system

import (
	"math"

	"vector-defense/internal/component"
	"vector-defense/internal/config"
	"vector-defense/internal/defs"
	"vector-defense/internal/entity"
	"vector-defense/internal/event"
	"vector-defense/internal/types"
	"vector-defense/internal/utils"
)

// CombatSystem resolves tower fire each frame: cooldown accumulation,
// nearest-enemy targeting, per-type damage, and the laser visuals. Enemies
// dropping to zero health are only marked inactive here; removal and the
// reward bookkeeping are deferred to the lifecycle sweep so that every kill
// in a frame is handled uniformly.
type CombatSystem struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, rng *utils.PRNGService, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:        ecs,
		rng:        rng,
		dispatcher: dispatcher,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	ses := s.ecs.Session

	baseInterval := ses.FireRate
	overdrive := ses.OverdriveTimer > 0
	if overdrive {
		baseInterval = config.OverdriveInterval
	}

	for id, tower := range s.ecs.Towers {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		tower.ShootTimer += deltaTime

		if overdrive && s.rng.Intn(5) == 0 {
			s.spawnSpark(pos)
		}

		def, ok := defs.TowerDefs[tower.DefID]
		if !ok {
			continue
		}
		if tower.ShootTimer < baseInterval*def.RateMult {
			continue
		}

		targetID := s.findNearestEnemy(pos.X, pos.Y, ses.TowerRange, 0)
		if targetID == 0 {
			continue
		}
		targetPos := s.ecs.Positions[targetID]

		s.applyDamage(targetID, def.Damage)
		if def.Slow != nil {
			s.ecs.SlowEffects[targetID] = &component.SlowEffect{Timer: def.Slow.Duration}
		}
		s.spawnLaser(pos.X, pos.Y, targetPos.X, targetPos.Y, def)

		if def.Chain != nil {
			chainID := s.findNearestEnemy(targetPos.X, targetPos.Y, def.Chain.Radius, targetID)
			if chainID != 0 {
				chainPos := s.ecs.Positions[chainID]
				s.applyDamage(chainID, def.Chain.Damage)
				s.spawnLaser(targetPos.X, targetPos.Y, chainPos.X, chainPos.Y, def)
			}
		}

		tower.ShootTimer = 0
		s.dispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: tower.DefID})
	}
}

// findNearestEnemy returns the living enemy closest to (x, y) within
// maxDist, excluding the given entity, or 0 when none qualifies.
func (s *CombatSystem) findNearestEnemy(x, y, maxDist float64, exclude types.EntityID) types.EntityID {
	var best types.EntityID
	minDist := maxDist
	for id, enemy := range s.ecs.Enemies {
		if id == exclude || !enemy.Active {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		if d := utils.Distance(x, y, pos.X, pos.Y); d < minDist {
			minDist = d
			best = id
		}
	}
	return best
}

func (s *CombatSystem) applyDamage(id types.EntityID, damage float64) {
	health := s.ecs.Healths[id]
	if health == nil {
		return
	}
	health.Value -= damage
	if health.Value <= 0 {
		if enemy, ok := s.ecs.Enemies[id]; ok {
			enemy.Active = false
		}
	}
}

func (s *CombatSystem) spawnLaser(fromX, fromY, toX, toY float64, def defs.TowerDefinition) {
	id := s.ecs.NewEntity()
	s.ecs.Lasers[id] = &component.Laser{
		FromX:    fromX,
		FromY:    fromY,
		ToX:      toX,
		ToY:      toY,
		Color:    def.Visuals.LaserColor,
		Lifetime: config.LaserLifetime,
	}
}

// spawnSpark emits a short-lived gold particle around an overdriven tower.
func (s *CombatSystem) spawnSpark(pos *component.Position) {
	angle := s.rng.Angle()
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{
		X: pos.X + 18*math.Cos(angle),
		Y: pos.Y + 18*math.Sin(angle),
	}
	s.ecs.Particles[id] = &component.Particle{
		VelX:    0,
		VelY:    -120,
		Color:   config.ColorGold,
		Life:    0.4,
		MaxLife: 0.4,
	}
}
