// internal/defs/enemies.go
package defs

// EnemyDefinition holds the static data for the fixed enemy archetypes: the
// boss and the split fragment. Regular wave enemies are generated from the
// wave formula instead of a definition.
type EnemyDefinition struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Sides      int     `json:"sides"`
	Radius     float64 `json:"radius"`
	Health     float64 `json:"health"`
	Speed      float64 `json:"speed"`
	CoreDamage int     `json:"core_damage"`
}

// Well-known enemy IDs, matching enemies.json.
const (
	EnemyBoss     = "boss"
	EnemyFragment = "fragment"
)

// EnemyDefs is the library of all enemy archetype definitions, mapped by ID.
var EnemyDefs map[string]EnemyDefinition
