// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/towers.json data/enemies.json
var dataFS embed.FS

// Load populates the tower and enemy libraries from the embedded data files.
func Load() error {
	towers, err := dataFS.ReadFile("data/towers.json")
	if err != nil {
		return fmt.Errorf("failed to read tower definitions: %w", err)
	}
	var towerDefs []TowerDefinition
	if err := json.Unmarshal(towers, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}
	TowerDefs = make(map[string]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		TowerDefs[def.ID] = def
	}

	enemies, err := dataFS.ReadFile("data/enemies.json")
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions: %w", err)
	}
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(enemies, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	EnemyDefs = make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		EnemyDefs[def.ID] = def
	}

	return nil
}
