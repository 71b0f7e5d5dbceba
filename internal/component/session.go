// internal/component/session.go
package component

// Session is the explicit simulation-state record: everything that used to
// be a free-floating global in ad hoc renditions of this game. It is owned
// by the ECS and mutated in place by the systems, which keeps every update
// function testable without a live window.
type Session struct {
	CoreHealth    int
	MaxCoreHealth int
	Score         int
	Currency      int
	WaveNumber    int

	// Upgrades and abilities
	MaxTowers     int
	FireRate      float64
	TowerRange    float64
	PulseCharges  int
	TeslaUnlocked bool

	// Running ability timers and their ring visuals
	EmpTimer        float64
	OverdriveTimer  float64
	EmpRingRadius   float64
	PulseRingRadius float64

	// Frame feedback consumed by the render pass
	ShakeIntensity   float64
	DamageFlashTimer float64

	GameOver bool
}
