// internal/system/status_effect.go
package system

import "vector-defense/internal/entity"

// StatusEffectSystem expires per-enemy debuffs.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

func (s *StatusEffectSystem) Update(deltaTime float64) {
	for id, effect := range s.ecs.SlowEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.SlowEffects, id)
		}
	}
}
