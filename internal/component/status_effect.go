// internal/component/status_effect.go
package component

// SlowEffect marks an enemy as slowed by a cryo hit. While the timer runs
// the movement system scales the enemy's speed down.
type SlowEffect struct {
	Timer float64
}
