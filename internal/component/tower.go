// internal/component/tower.go
package component

// Tower is a player-placed defense node.
type Tower struct {
	DefID      string // ID from towers.json
	ShootTimer float64
}
