package defs

import "testing"

func TestLoadPopulatesLibraries(t *testing.T) {
	if err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, id := range []string{TowerStandard, TowerCryo, TowerTesla} {
		if _, ok := TowerDefs[id]; !ok {
			t.Errorf("missing tower definition %q", id)
		}
	}
	for _, id := range []string{EnemyBoss, EnemyFragment} {
		if _, ok := EnemyDefs[id]; !ok {
			t.Errorf("missing enemy definition %q", id)
		}
	}

	cryo := TowerDefs[TowerCryo]
	if cryo.Slow == nil {
		t.Error("cryo definition lost its slow debuff")
	}
	tesla := TowerDefs[TowerTesla]
	if tesla.Chain == nil {
		t.Error("tesla definition lost its chain arc")
	}
	if tesla.UnlockCost == 0 {
		t.Error("tesla must start locked")
	}

	boss := EnemyDefs[EnemyBoss]
	if boss.CoreDamage <= EnemyDefs[EnemyFragment].CoreDamage {
		t.Error("boss core damage must exceed a fragment's")
	}
}
