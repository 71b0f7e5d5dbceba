// internal/entity/ecs.go
package entity

import (
	"image/color"

	"vector-defense/internal/component"
	"vector-defense/internal/config"
	"vector-defense/internal/types"
)

// ECS owns every entity collection of the simulation. All maps are keyed by
// EntityID; an entity exists in exactly the maps relevant to it. Single
// writer, single thread: only the frame loop touches this.
type ECS struct {
	NextID types.EntityID

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Lasers      map[types.EntityID]*component.Laser
	PowerUps    map[types.EntityID]*component.PowerUp
	Particles   map[types.EntityID]*component.Particle
	SlowEffects map[types.EntityID]*component.SlowEffect

	// Notifications stack oldest-first on screen, so they live in an
	// insertion-ordered slice instead of a component map.
	Notifications []component.Notification

	Wave    *component.Wave // nil outside of waves
	Session *component.Session
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Lasers:      make(map[types.EntityID]*component.Laser),
		PowerUps:    make(map[types.EntityID]*component.PowerUp),
		Particles:   make(map[types.EntityID]*component.Particle),
		SlowEffects: make(map[types.EntityID]*component.SlowEffect),
		Wave:        nil,
		Session:     NewSession(),
	}
}

// NewSession returns the session record with every stat at its initial value.
func NewSession() *component.Session {
	return &component.Session{
		CoreHealth:    config.MaxCoreHealth,
		MaxCoreHealth: config.MaxCoreHealth,
		MaxTowers:     config.BaseMaxTowers,
		FireRate:      config.BaseFireRate,
		TowerRange:    config.BaseTowerRange,
	}
}

// Reset returns the ECS to its initial state in place, so systems holding
// the pointer keep working across a game-over reboot.
func (ecs *ECS) Reset() {
	ecs.NextID = 1
	ecs.Positions = make(map[types.EntityID]*component.Position)
	ecs.Velocities = make(map[types.EntityID]*component.Velocity)
	ecs.Healths = make(map[types.EntityID]*component.Health)
	ecs.Enemies = make(map[types.EntityID]*component.Enemy)
	ecs.Towers = make(map[types.EntityID]*component.Tower)
	ecs.Lasers = make(map[types.EntityID]*component.Laser)
	ecs.PowerUps = make(map[types.EntityID]*component.PowerUp)
	ecs.Particles = make(map[types.EntityID]*component.Particle)
	ecs.SlowEffects = make(map[types.EntityID]*component.SlowEffect)
	ecs.Notifications = nil
	ecs.Wave = nil
	ecs.Session = NewSession()
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// WaveActive reports whether a wave is currently running.
func (ecs *ECS) WaveActive() bool {
	return ecs.Wave != nil
}

// RemoveEnemy deletes every component an enemy owns.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.SlowEffects, id)
	delete(ecs.Enemies, id)
}

// RemoveTower deletes a tower entity.
func (ecs *ECS) RemoveTower(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Towers, id)
}

// PushNotification appends a HUD message to the queue.
func (ecs *ECS) PushNotification(text string, timer float64, col color.RGBA) {
	ecs.Notifications = append(ecs.Notifications, component.Notification{
		Text:  text,
		Timer: timer,
		Color: col,
	})
}
