package system

import (
	"testing"

	"vector-defense/internal/config"
	"vector-defense/internal/defs"
	"vector-defense/internal/event"
)

func TestTowerFiresAtNearestEnemyInRange(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	cs := NewCombatSystem(ecs, rng, dispatcher)

	towerID := addTower(ecs, 100, 100, defs.TowerStandard)
	near := addEnemy(ecs, 150, 100, 5, 150, 5)
	far := addEnemy(ecs, 250, 100, 5, 150, 5)

	var shots int
	dispatcher.Subscribe(event.ShotFired, listenerFunc(func(event.Event) { shots++ }))

	ecs.Towers[towerID].ShootTimer = config.BaseFireRate
	cs.Update(0.01)

	if got := ecs.Healths[near].Value; got != 4 {
		t.Errorf("near enemy health: got %v, want 4", got)
	}
	if got := ecs.Healths[far].Value; got != 5 {
		t.Errorf("far enemy must be untouched, health %v", got)
	}
	if len(ecs.Lasers) != 1 {
		t.Errorf("expected 1 laser, got %d", len(ecs.Lasers))
	}
	if ecs.Towers[towerID].ShootTimer != 0 {
		t.Error("cooldown not reset after firing")
	}
	if shots != 1 {
		t.Errorf("expected 1 shot event, got %d", shots)
	}
}

func TestTowerHoldsFireOutOfRange(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	cs := NewCombatSystem(ecs, rng, dispatcher)

	towerID := addTower(ecs, 100, 100, defs.TowerStandard)
	enemy := addEnemy(ecs, 100+config.BaseTowerRange+1, 100, 5, 150, 5)

	ecs.Towers[towerID].ShootTimer = config.BaseFireRate
	cs.Update(0.01)

	if got := ecs.Healths[enemy].Value; got != 5 {
		t.Errorf("out-of-range enemy took damage: health %v", got)
	}
	if len(ecs.Lasers) != 0 {
		t.Error("laser spawned without a target")
	}
}

func TestCooldownAccumulatesBeforeFiring(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	cs := NewCombatSystem(ecs, rng, dispatcher)

	addTower(ecs, 100, 100, defs.TowerStandard)
	enemy := addEnemy(ecs, 150, 100, 5, 150, 5)

	cs.Update(0.5)
	if got := ecs.Healths[enemy].Value; got != 5 {
		t.Fatalf("fired before the cooldown elapsed, health %v", got)
	}
	cs.Update(0.5)
	if got := ecs.Healths[enemy].Value; got != 4 {
		t.Errorf("expected a shot after 1.0s, health %v", got)
	}
}

func TestCryoHitSlowsTarget(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	cs := NewCombatSystem(ecs, rng, dispatcher)

	towerID := addTower(ecs, 100, 100, defs.TowerCryo)
	enemy := addEnemy(ecs, 150, 100, 5, 150, 5)

	ecs.Towers[towerID].ShootTimer = config.BaseFireRate * 1.5
	cs.Update(0.01)

	slow, ok := ecs.SlowEffects[enemy]
	if !ok {
		t.Fatal("cryo hit did not apply a slow effect")
	}
	if slow.Timer != 1.5 {
		t.Errorf("slow duration: got %v, want 1.5", slow.Timer)
	}
	if got := ecs.Healths[enemy].Value; got != 4.5 {
		t.Errorf("cryo damage: health got %v, want 4.5", got)
	}
}

func TestTeslaChainsToSecondEnemy(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	cs := NewCombatSystem(ecs, rng, dispatcher)

	towerID := addTower(ecs, 100, 100, defs.TowerTesla)
	primary := addEnemy(ecs, 150, 100, 5, 150, 5)
	chained := addEnemy(ecs, 150, 200, 5, 150, 5) // within the 140 arc radius
	outside := addEnemy(ecs, 150, 300, 5, 150, 5)

	ecs.Towers[towerID].ShootTimer = config.BaseFireRate * 1.4
	cs.Update(0.01)

	if got := ecs.Healths[primary].Value; got != 4.2 {
		t.Errorf("primary health: got %v, want 4.2", got)
	}
	if got := ecs.Healths[chained].Value; got != 4.5 {
		t.Errorf("chained health: got %v, want 4.5", got)
	}
	if got := ecs.Healths[outside].Value; got != 5 {
		t.Errorf("enemy outside arc radius took damage: health %v", got)
	}
	if len(ecs.Lasers) != 2 {
		t.Errorf("expected 2 lasers for a chained shot, got %d", len(ecs.Lasers))
	}
}

func TestKillMarksInactiveWithoutRemoving(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	cs := NewCombatSystem(ecs, rng, dispatcher)

	towerID := addTower(ecs, 100, 100, defs.TowerStandard)
	enemy := addEnemy(ecs, 150, 100, 1, 150, 5)

	ecs.Towers[towerID].ShootTimer = config.BaseFireRate
	cs.Update(0.01)

	e, ok := ecs.Enemies[enemy]
	if !ok {
		t.Fatal("combat must not remove enemies, only mark them")
	}
	if e.Active {
		t.Error("killed enemy still active")
	}
}

func TestInactiveEnemiesAreNotTargeted(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	cs := NewCombatSystem(ecs, rng, dispatcher)

	towerID := addTower(ecs, 100, 100, defs.TowerStandard)
	dead := addEnemy(ecs, 150, 100, 5, 150, 5)
	ecs.Enemies[dead].Active = false
	live := addEnemy(ecs, 200, 100, 5, 150, 5)

	ecs.Towers[towerID].ShootTimer = config.BaseFireRate
	cs.Update(0.01)

	if got := ecs.Healths[dead].Value; got != 5 {
		t.Errorf("inactive enemy was targeted: health %v", got)
	}
	if got := ecs.Healths[live].Value; got != 4 {
		t.Errorf("live enemy should take the shot: health %v", got)
	}
}

func TestOverdriveShortensFireInterval(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	cs := NewCombatSystem(ecs, rng, dispatcher)
	ecs.Session.OverdriveTimer = 5.0

	addTower(ecs, 100, 100, defs.TowerStandard)
	enemy := addEnemy(ecs, 150, 100, 100, 150, 5)

	cs.Update(config.OverdriveInterval)

	if got := ecs.Healths[enemy].Value; got != 99 {
		t.Errorf("overdriven tower did not fire at the short interval: health %v", got)
	}
}
