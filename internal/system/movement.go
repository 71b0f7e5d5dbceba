// internal/system/movement.go
package system

import (
	"math"

	"vector-defense/internal/config"
	"vector-defense/internal/entity"
)

// MovementSystem advances enemies straight toward the core. Towers still
// fire while an EMP is active, but no enemy moves.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	if s.ecs.Session.EmpTimer > 0 {
		return
	}
	for id := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		speed := vel.Speed
		if _, slowed := s.ecs.SlowEffects[id]; slowed {
			speed *= config.SlowSpeedFactor
		}

		angle := math.Atan2(config.CoreY-pos.Y, config.CoreX-pos.X)
		pos.X += math.Cos(angle) * speed * deltaTime
		pos.Y += math.Sin(angle) * speed * deltaTime
	}
}
