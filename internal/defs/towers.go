// internal/defs/towers.go
package defs

import "image/color"

// ChainDef describes a secondary arc to the nearest other enemy around the
// primary target.
type ChainDef struct {
	Radius float64 `json:"radius"`
	Damage float64 `json:"damage"`
}

// SlowDef describes the debuff a hit applies.
type SlowDef struct {
	Duration float64 `json:"duration"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Damage     float64   `json:"damage"`
	RateMult   float64   `json:"rate_mult"` // multiplier on the effective fire interval
	Slow       *SlowDef  `json:"slow,omitempty"`
	Chain      *ChainDef `json:"chain,omitempty"`
	UnlockCost int       `json:"unlock_cost"` // 0 means available from the start
	Visuals    Visuals   `json:"visuals"`
}

// Visuals contains parameters for rendering a tower or enemy archetype.
type Visuals struct {
	Sides      int        `json:"sides"`
	Color      color.RGBA `json:"color"`
	LaserColor color.RGBA `json:"laser_color"`
}

// Well-known tower IDs, matching towers.json.
const (
	TowerStandard = "standard"
	TowerCryo     = "cryo"
	TowerTesla    = "tesla"
)

// TowerDefs is the library of all tower definitions, mapped by their ID.
var TowerDefs map[string]TowerDefinition
