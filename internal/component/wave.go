// internal/component/wave.go
package component

// Wave holds the spawn schedule of the active wave. The ECS carries a nil
// Wave outside of waves; a non-nil Wave is what "wave active" means.
type Wave struct {
	Number         int
	EnemiesToSpawn int
	SpawnTimer     float64
	BossQueued     bool
}
