// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TargetFPS    = 60
	MaxDeltaTime = 0.06

	UIHeaderHeight = 60
	UIFooterHeight = 85

	CoreRadius      = 50.0
	ExclusionRadius = CoreRadius + 35.0
	MaxCoreHealth   = 20
	CoreX           = ScreenWidth / 2.0
	CoreY           = ScreenHeight / 2.0

	// Wave scheduling
	WaveBaseEnemies    = 2
	WaveEnemiesPerWave = 5
	BossWaveInterval   = 10
	BossSpawnDelay     = 1.8
	BossHealthPerWave  = 25.0
	SpawnRingRadius    = 850.0
	SpawnBaseInterval  = 1.25
	SpawnIntervalDecay = 0.06
	SpawnMinInterval   = 0.15

	// Enemy stat formula
	EnemyMinSides      = 3
	EnemyMaxSides      = 10
	EnemyRadius        = 22.0
	EnemyBaseSpeed     = 180.0
	EnemySpeedPerSide  = 10.0
	EnemySpeedPerWave  = 0.035
	EnemySpeedCap      = 1.6
	SplitSideThreshold = 6

	// Towers
	BaseMaxTowers     = 3
	BaseFireRate      = 0.8
	BaseTowerRange    = 230.0
	LaserLifetime     = 0.07
	SlowSpeedFactor   = 0.4
	OverdriveInterval = 0.05

	// Abilities
	EmpDuration       = 4.5
	OverdriveDuration = 7.0
	EmpRingSpeed      = 1600.0
	EmpRingCutoff     = 2500.0
	PulseRadius       = 400.0
	PulseDamageScale  = 10.0
	PulseRingSpeed    = 2200.0
	PulseRingCutoff   = 1500.0
	PulseShake        = 25.0
	HealAmount        = 3

	// Power-ups
	PowerUpLifetime   = 10.0
	PowerUpPickupDist = 45.0
	PowerUpSpinSpeed  = 120.0
	PowerUpDropChance = 20 // percent per kill

	// Rewards
	CurrencyPerSide = 14
	CurrencyBase    = 20
	ScorePerHealth  = 100

	// Feedback
	CoreHitShake       = 18.0
	DamageFlashTime    = 0.18
	ShakeDecay         = 15.0
	DeathBurstCount    = 12
	SeekParticleSpeed  = 600.0
	SeekParticleCutoff = 15.0

	// Armory
	SlotBaseCost      = 400
	SlotCostStep      = 350
	PulseChargeCost   = 300
	OverclockBaseCost = 600
	OverclockFactor   = 0.85
	RepairCost        = 450
	RepairAmount      = 6
	TeslaUnlockCost   = 750

	// Leaderboard
	NameMaxLength    = 12
	LeaderboardTopN  = 10
	DefaultScoreFile = "scores.dat"
)

// Neon palette shared by the render system and the UI.
var (
	ColorCyan     = color.RGBA{0, 255, 255, 255}
	ColorLime     = color.RGBA{0, 255, 100, 255}
	ColorRed      = color.RGBA{255, 60, 60, 255}
	ColorGold     = color.RGBA{255, 215, 0, 255}
	ColorWhite    = color.RGBA{245, 245, 245, 255}
	ColorSkyBlue  = color.RGBA{100, 200, 255, 255}
	ColorPurple   = color.RGBA{200, 100, 255, 255}
	ColorDarkGray = color.RGBA{30, 30, 35, 255}
	ColorBlack    = color.RGBA{10, 10, 12, 255}
	ColorGrid     = color.RGBA{30, 30, 35, 255}
)
