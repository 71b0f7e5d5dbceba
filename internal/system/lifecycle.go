// internal/system/lifecycle.go
package system

import (
	"image/color"
	"math"

	"vector-defense/internal/component"
	"vector-defense/internal/config"
	"vector-defense/internal/defs"
	"vector-defense/internal/entity"
	"vector-defense/internal/event"
	"vector-defense/internal/utils"
)

// LifecycleSystem is the per-frame sweep: it removes enemies that reached
// the core or were marked dead by combat, applies the side effects of
// removal (core damage, rewards, splits, drops), and expires the transient
// collections (lasers, particles, power-ups, notifications).
type LifecycleSystem struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewLifecycleSystem(ecs *entity.ECS, rng *utils.PRNGService, dispatcher *event.Dispatcher) *LifecycleSystem {
	return &LifecycleSystem{
		ecs:        ecs,
		rng:        rng,
		dispatcher: dispatcher,
	}
}

func (s *LifecycleSystem) Update(deltaTime float64) {
	s.sweepEnemies()
	s.updateLasers(deltaTime)
	s.updatePowerUps(deltaTime)
	s.updateParticles(deltaTime)
	s.updateNotifications(deltaTime)
	s.decayFeedback(deltaTime)
}

func (s *LifecycleSystem) sweepEnemies() {
	ses := s.ecs.Session

	// Fragment spawns are collected and applied after the pass so the
	// sweep never visits an entity added mid-iteration.
	var fragmentSpawns []component.Position

	for id, enemy := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEnemy(id)
			continue
		}

		if utils.Distance(pos.X, pos.Y, config.CoreX, config.CoreY) < config.CoreRadius {
			damage := 1
			if enemy.Boss {
				damage = defs.EnemyDefs[defs.EnemyBoss].CoreDamage
			}
			ses.CoreHealth -= damage
			ses.ShakeIntensity = config.CoreHitShake
			ses.DamageFlashTimer = config.DamageFlashTime
			s.ecs.RemoveEnemy(id)
			s.dispatcher.Dispatch(event.Event{Type: event.CoreDamaged, Data: damage})
			continue
		}

		if enemy.Active {
			continue
		}

		// Killed by combat this frame: rewards, burst, split, drop.
		health := s.ecs.Healths[id]
		ses.Currency += enemy.Sides*config.CurrencyPerSide + config.CurrencyBase
		if health != nil {
			ses.Score += int(health.Max) * config.ScorePerHealth
		}
		s.spawnBurst(pos.X, pos.Y, config.ColorWhite, config.DeathBurstCount, 2.0)

		if enemy.Sides >= config.SplitSideThreshold && !enemy.Fragment {
			fragmentSpawns = append(fragmentSpawns, *pos)
		}
		if s.rng.Chance(config.PowerUpDropChance) {
			s.spawnPowerUp(pos.X, pos.Y)
		}

		s.ecs.RemoveEnemy(id)
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
	}

	for _, pos := range fragmentSpawns {
		s.spawnFragments(pos)
	}
}

// spawnFragments replaces a split enemy with two fragments at its death
// position. Fragments carry the Fragment flag and never split again.
func (s *LifecycleSystem) spawnFragments(pos component.Position) {
	def := defs.EnemyDefs[defs.EnemyFragment]
	for i := 0; i < 2; i++ {
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
		s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
		s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
		s.ecs.Enemies[id] = &component.Enemy{
			Sides:    def.Sides,
			Radius:   def.Radius,
			Fragment: true,
			Active:   true,
		}
	}
}

func (s *LifecycleSystem) spawnPowerUp(x, y float64) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.PowerUps[id] = &component.PowerUp{
		Type:   component.PowerType(s.rng.Intn(3)),
		Timer:  config.PowerUpLifetime,
		Active: true,
	}
}

// spawnBurst scatters short-lived particles in random directions.
func (s *LifecycleSystem) spawnBurst(x, y float64, col color.RGBA, count int, speed float64) {
	for i := 0; i < count; i++ {
		angle := s.rng.Angle()
		v := (0.5 + 1.5*s.rng.Float64()) * speed
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{X: x, Y: y}
		s.ecs.Particles[id] = &component.Particle{
			VelX:    math.Cos(angle) * v,
			VelY:    math.Sin(angle) * v,
			Color:   col,
			Life:    1.0,
			MaxLife: 1.0,
		}
	}
}

func (s *LifecycleSystem) updateLasers(deltaTime float64) {
	for id, laser := range s.ecs.Lasers {
		laser.Lifetime -= deltaTime
		if laser.Lifetime <= 0 {
			delete(s.ecs.Lasers, id)
		}
	}
}

// updatePowerUps advances pickup timers. Timers only run while a wave is
// active; during the build phase the pickups are frozen in place.
func (s *LifecycleSystem) updatePowerUps(deltaTime float64) {
	waveActive := s.ecs.WaveActive()
	for id, p := range s.ecs.PowerUps {
		if waveActive {
			p.Timer -= deltaTime
		}
		p.Rotation += config.PowerUpSpinSpeed * deltaTime
		if p.Timer <= 0 || !p.Active {
			delete(s.ecs.PowerUps, id)
			delete(s.ecs.Positions, id)
		}
	}
}

func (s *LifecycleSystem) updateParticles(deltaTime float64) {
	for id, p := range s.ecs.Particles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			delete(s.ecs.Particles, id)
			continue
		}
		p.Life -= deltaTime
		if p.Seeking {
			angle := math.Atan2(config.CoreY-pos.Y, config.CoreX-pos.X)
			pos.X += math.Cos(angle) * config.SeekParticleSpeed * deltaTime
			pos.Y += math.Sin(angle) * config.SeekParticleSpeed * deltaTime
			if utils.Distance(pos.X, pos.Y, config.CoreX, config.CoreY) < config.SeekParticleCutoff {
				p.Life = 0
			}
		} else {
			pos.X += p.VelX * deltaTime
			pos.Y += p.VelY * deltaTime
		}
		if p.Life <= 0 {
			delete(s.ecs.Particles, id)
			delete(s.ecs.Positions, id)
		}
	}
}

// updateNotifications expires HUD messages in place, keeping insertion
// order so the on-screen stack stays stable.
func (s *LifecycleSystem) updateNotifications(deltaTime float64) {
	kept := s.ecs.Notifications[:0]
	for i := range s.ecs.Notifications {
		n := s.ecs.Notifications[i]
		n.Timer -= deltaTime
		if n.Timer > 0 {
			kept = append(kept, n)
		}
	}
	s.ecs.Notifications = kept
}

func (s *LifecycleSystem) decayFeedback(deltaTime float64) {
	ses := s.ecs.Session
	if ses.ShakeIntensity > 0 {
		ses.ShakeIntensity -= config.ShakeDecay * deltaTime
		if ses.ShakeIntensity < 0 {
			ses.ShakeIntensity = 0
		}
	}
	if ses.DamageFlashTimer > 0 {
		ses.DamageFlashTimer -= deltaTime
	}
}
