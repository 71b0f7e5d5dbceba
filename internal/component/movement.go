// internal/component/movement.go
package component

// Position — world-space position in pixels.
type Position struct {
	X, Y float64
}

// Velocity — scalar speed for entities that steer themselves (enemies),
// or a fixed vector for ballistic particles.
type Velocity struct {
	Speed float64
}

// Health tracks current and maximum hit points.
type Health struct {
	Value float64
	Max   float64
}
