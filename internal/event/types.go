// internal/event/types.go
package event

const (
	WaveStarted      Type = "WaveStarted"
	WaveEnded        Type = "WaveEnded"
	BossSpawned      Type = "BossSpawned"
	EnemyKilled      Type = "EnemyKilled"
	CoreDamaged      Type = "CoreDamaged"
	ShotFired        Type = "ShotFired"
	PowerUpCollected Type = "PowerUpCollected"
	PulseFired       Type = "PulseFired"
	TowerPlaced      Type = "TowerPlaced"
	GameOver         Type = "GameOver"
)
