// internal/component/powerup.go
package component

// PowerType enumerates the pickup effects.
type PowerType int

const (
	PowerEMP PowerType = iota
	PowerOverdrive
	PowerHeal
)

// PowerUp is a timed pickup dropped on enemy death. Its countdown only
// advances while a wave is active; during the build phase it is frozen.
type PowerUp struct {
	Type     PowerType
	Timer    float64
	Active   bool
	Rotation float64
}
