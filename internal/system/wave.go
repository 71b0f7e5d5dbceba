// internal/system/wave.go
package system

import (
	"math"

	"vector-defense/internal/component"
	"vector-defense/internal/config"
	"vector-defense/internal/defs"
	"vector-defense/internal/entity"
	"vector-defense/internal/event"
	"vector-defense/internal/utils"
)

// WaveSystem decides spawn cadence and composition for the active wave.
type WaveSystem struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, rng *utils.PRNGService, dispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:        ecs,
		rng:        rng,
		dispatcher: dispatcher,
	}
}

// StartWave begins the next wave. No-op while a wave is already running.
func (s *WaveSystem) StartWave() {
	if s.ecs.WaveActive() {
		return
	}
	ses := s.ecs.Session
	ses.WaveNumber++
	s.ecs.Wave = &component.Wave{
		Number:         ses.WaveNumber,
		EnemiesToSpawn: config.WaveBaseEnemies + ses.WaveNumber*config.WaveEnemiesPerWave,
		BossQueued:     ses.WaveNumber%config.BossWaveInterval == 0,
	}
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: ses.WaveNumber})
}

// SpawnInterval returns the per-wave spawn interval in seconds.
func SpawnInterval(wave int) float64 {
	interval := config.SpawnBaseInterval - float64(wave)*config.SpawnIntervalDecay
	return math.Max(config.SpawnMinInterval, interval)
}

// Update advances the spawn schedule of the active wave.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}

	wave.SpawnTimer += deltaTime
	if wave.EnemiesToSpawn > 0 {
		if wave.SpawnTimer >= SpawnInterval(wave.Number) {
			s.spawnWaveEnemy(wave)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = 0
		}
	} else if wave.BossQueued {
		if wave.SpawnTimer >= config.BossSpawnDelay {
			s.spawnBoss(wave)
			wave.BossQueued = false
			wave.SpawnTimer = 0
		}
	}
}

// FinishIfCleared ends the wave once the spawn queue is exhausted, no boss is
// pending, and no enemy remains. Runs after the sweep so that kills from the
// same frame count. Ending a wave clears every tower: re-placement each wave
// is a deliberate design choice.
func (s *WaveSystem) FinishIfCleared() {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	if wave.EnemiesToSpawn > 0 || wave.BossQueued || len(s.ecs.Enemies) > 0 {
		return
	}
	s.ecs.Wave = nil
	for id := range s.ecs.Towers {
		s.ecs.RemoveTower(id)
	}
	s.ecs.PushNotification("WAVE CLEAR", 2.0, config.ColorSkyBlue)
	s.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
}

// ThreatsRemaining counts live enemies plus everything still scheduled.
func (s *WaveSystem) ThreatsRemaining() int {
	count := len(s.ecs.Enemies)
	if wave := s.ecs.Wave; wave != nil {
		count += wave.EnemiesToSpawn
		if wave.BossQueued {
			count++
		}
	}
	return count
}

func (s *WaveSystem) spawnWaveEnemy(wave *component.Wave) {
	maxSides := config.EnemyMinSides + wave.Number/2
	if maxSides > config.EnemyMaxSides {
		maxSides = config.EnemyMaxSides
	}
	sides := s.rng.IntRange(config.EnemyMinSides, maxSides)

	speedMult := math.Min(config.EnemySpeedCap, 1.0+float64(wave.Number)*config.EnemySpeedPerWave)
	speed := (config.EnemyBaseSpeed - float64(sides)*config.EnemySpeedPerSide) * speedMult
	health := float64(sides)

	angle := s.rng.Angle()
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{
		X: config.CoreX + math.Cos(angle)*config.SpawnRingRadius,
		Y: config.CoreY + math.Sin(angle)*config.SpawnRingRadius,
	}
	s.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Enemies[id] = &component.Enemy{
		Sides:  sides,
		Radius: config.EnemyRadius,
		Active: true,
	}
}

func (s *WaveSystem) spawnBoss(wave *component.Wave) {
	def := defs.EnemyDefs[defs.EnemyBoss]
	health := def.Health + float64(wave.Number)*config.BossHealthPerWave

	angle := s.rng.Angle()
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{
		X: config.CoreX + math.Cos(angle)*config.SpawnRingRadius,
		Y: config.CoreY + math.Sin(angle)*config.SpawnRingRadius,
	}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Enemies[id] = &component.Enemy{
		Sides:  def.Sides,
		Radius: def.Radius,
		Boss:   true,
		Active: true,
	}
	s.ecs.PushNotification("BOSS DETECTED", 3.0, config.ColorRed)
	s.dispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: id})
}
