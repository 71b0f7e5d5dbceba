// internal/system/ability.go
package system

import (
	"math"

	"vector-defense/internal/component"
	"vector-defense/internal/config"
	"vector-defense/internal/entity"
	"vector-defense/internal/event"
	"vector-defense/internal/types"
	"vector-defense/internal/utils"
)

// AbilitySystem runs the three global ability mechanisms: the EMP and
// Overdrive countdown timers with their expanding ring visuals, and the
// instant-effect Pulse discharge. It also applies power-up pickups.
type AbilitySystem struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewAbilitySystem(ecs *entity.ECS, rng *utils.PRNGService, dispatcher *event.Dispatcher) *AbilitySystem {
	return &AbilitySystem{
		ecs:        ecs,
		rng:        rng,
		dispatcher: dispatcher,
	}
}

// Update advances the ability timers and ring animations.
func (s *AbilitySystem) Update(deltaTime float64) {
	ses := s.ecs.Session

	if ses.EmpRingRadius > 0 {
		ses.EmpRingRadius += config.EmpRingSpeed * deltaTime
		if ses.EmpRingRadius > config.EmpRingCutoff {
			ses.EmpRingRadius = 0
		}
	}
	if ses.PulseRingRadius > 0 {
		ses.PulseRingRadius += config.PulseRingSpeed * deltaTime
		if ses.PulseRingRadius > config.PulseRingCutoff {
			ses.PulseRingRadius = 0
		}
	}
	if ses.EmpTimer > 0 {
		ses.EmpTimer -= deltaTime
	}
	if ses.OverdriveTimer > 0 {
		ses.OverdriveTimer -= deltaTime
	}
}

// ActivatePulse discharges one pulse charge: every enemy within the pulse
// radius takes damage inversely proportional to its distance from the core.
// Requires an active wave and a charge; reports whether it fired.
func (s *AbilitySystem) ActivatePulse() bool {
	ses := s.ecs.Session
	if ses.PulseCharges <= 0 || !s.ecs.WaveActive() {
		return false
	}
	ses.PulseCharges--
	ses.ShakeIntensity = config.PulseShake
	ses.PulseRingRadius = 10.0
	s.ecs.PushNotification("PULSE DISCHARGED", 2.5, config.ColorSkyBlue)

	for id, enemy := range s.ecs.Enemies {
		if !enemy.Active {
			continue
		}
		pos := s.ecs.Positions[id]
		health := s.ecs.Healths[id]
		if pos == nil || health == nil {
			continue
		}
		dist := utils.Distance(config.CoreX, config.CoreY, pos.X, pos.Y)
		if dist >= config.PulseRadius {
			continue
		}
		health.Value -= (config.PulseRadius - dist) / config.PulseDamageScale
		if health.Value <= 0 {
			enemy.Active = false
		}
	}

	s.dispatcher.Dispatch(event.Event{Type: event.PulseFired})
	return true
}

// Collect applies a power-up's effect and deactivates it. The lifecycle
// sweep removes the entity on its next pass.
func (s *AbilitySystem) Collect(id types.EntityID) bool {
	p, ok := s.ecs.PowerUps[id]
	if !ok || !p.Active {
		return false
	}
	ses := s.ecs.Session

	switch p.Type {
	case component.PowerEMP:
		ses.EmpTimer = config.EmpDuration
		ses.EmpRingRadius = 10.0
		s.ecs.PushNotification("SYSTEM EMP ACTIVATED", 2.0, config.ColorPurple)
	case component.PowerOverdrive:
		ses.OverdriveTimer = config.OverdriveDuration
		s.ecs.PushNotification("LASER OVERDRIVE ONLINE", 2.0, config.ColorGold)
	case component.PowerHeal:
		ses.CoreHealth = min(ses.CoreHealth+config.HealAmount, ses.MaxCoreHealth)
		s.ecs.PushNotification("INTEGRITY RESTORED", 2.0, config.ColorCyan)
		if pos := s.ecs.Positions[id]; pos != nil {
			s.spawnHealStream(pos)
		}
	}

	p.Active = false
	s.dispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: p.Type})
	return true
}

// spawnHealStream scatters core-seeking particles around the pickup point.
func (s *AbilitySystem) spawnHealStream(origin *component.Position) {
	for i := 0; i < 100; i++ {
		angle := s.rng.Angle()
		dist := s.rng.Float64() * 40.0
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{
			X: origin.X + math.Cos(angle)*dist,
			Y: origin.Y + math.Sin(angle)*dist,
		}
		s.ecs.Particles[id] = &component.Particle{
			Color:   config.ColorCyan,
			Life:    1.5,
			MaxLife: 1.5,
			Seeking: true,
		}
	}
}
