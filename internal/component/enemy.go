// internal/component/enemy.go
package component

// Enemy represents a hostile polygon converging on the core.
// Active is cleared when combat drops its health to zero or below; the
// lifecycle sweep removes the entity and runs the reward/split bookkeeping
// on the following pass over the collection.
type Enemy struct {
	Sides    int
	Radius   float64
	Boss     bool
	Fragment bool // spawned by a split; fragments never split again
	Active   bool
}
