// internal/component/visual.go
package component

import "image/color"

// Laser is the transient visual record of a completed attack.
type Laser struct {
	FromX, FromY float64
	ToX, ToY     float64
	Color        color.RGBA
	Lifetime     float64
}

// Particle is a purely cosmetic fragment. Seeking particles ignore their
// velocity and home toward the core instead.
type Particle struct {
	VelX, VelY float64
	Color      color.RGBA
	Life       float64
	MaxLife    float64
	Seeking    bool
}

// Notification is a transient HUD message. Notifications stack on screen
// oldest-first, so the ECS keeps them in an insertion-ordered slice rather
// than a component map.
type Notification struct {
	Text  string
	Timer float64
	Color color.RGBA
}
