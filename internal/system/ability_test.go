package system

import (
	"testing"

	"vector-defense/internal/component"
	"vector-defense/internal/config"
	"vector-defense/internal/entity"
	"vector-defense/internal/types"
)

func addPowerUp(ecs *entity.ECS, x, y float64, typ component.PowerType) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.PowerUps[id] = &component.PowerUp{Type: typ, Timer: config.PowerUpLifetime, Active: true}
	return id
}

func TestPulseRequiresChargeAndWave(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	as := NewAbilitySystem(ecs, rng, dispatcher)

	ecs.Wave = &component.Wave{Number: 1}
	if as.ActivatePulse() {
		t.Error("pulse fired without a charge")
	}

	ecs.Wave = nil
	ecs.Session.PulseCharges = 1
	if as.ActivatePulse() {
		t.Error("pulse fired outside a wave")
	}
	if ecs.Session.PulseCharges != 1 {
		t.Error("charge consumed by a refused pulse")
	}
}

func TestPulseDamageScalesWithDistance(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	as := NewAbilitySystem(ecs, rng, dispatcher)
	ecs.Wave = &component.Wave{Number: 1}
	ecs.Session.PulseCharges = 2

	near := addEnemy(ecs, config.CoreX+100, config.CoreY, 100, 150, 5)
	edge := addEnemy(ecs, config.CoreX+450, config.CoreY, 100, 150, 5)

	if !as.ActivatePulse() {
		t.Fatal("pulse refused with a charge and an active wave")
	}
	if ecs.Session.PulseCharges != 1 {
		t.Errorf("charges after pulse: got %d, want 1", ecs.Session.PulseCharges)
	}

	// (400 - 100) / 10 = 30 damage at distance 100.
	if got := ecs.Healths[near].Value; got != 70 {
		t.Errorf("near enemy health: got %v, want 70", got)
	}
	if got := ecs.Healths[edge].Value; got != 100 {
		t.Errorf("enemy beyond pulse radius took damage: health %v", got)
	}
	if ecs.Session.ShakeIntensity != config.PulseShake {
		t.Errorf("pulse shake: got %v, want %v", ecs.Session.ShakeIntensity, config.PulseShake)
	}
	if ecs.Session.PulseRingRadius == 0 {
		t.Error("pulse ring not started")
	}
}

func TestPulseKillMarksInactive(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	as := NewAbilitySystem(ecs, rng, dispatcher)
	ecs.Wave = &component.Wave{Number: 1}
	ecs.Session.PulseCharges = 1

	weak := addEnemy(ecs, config.CoreX+100, config.CoreY, 5, 150, 5)
	as.ActivatePulse()

	if ecs.Enemies[weak].Active {
		t.Error("enemy killed by pulse still active")
	}
}

func TestCollectEMPFreezesMovement(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	as := NewAbilitySystem(ecs, rng, dispatcher)
	ms := NewMovementSystem(ecs)

	enemy := addEnemy(ecs, 300, 300, 5, 150, 5)
	pickup := addPowerUp(ecs, 500, 500, component.PowerEMP)

	if !as.Collect(pickup) {
		t.Fatal("collect refused an active power-up")
	}
	if ecs.Session.EmpTimer != config.EmpDuration {
		t.Errorf("EMP timer: got %v, want %v", ecs.Session.EmpTimer, config.EmpDuration)
	}
	if ecs.PowerUps[pickup].Active {
		t.Error("collected power-up still active")
	}

	before := *ecs.Positions[enemy]
	ms.Update(0.1)
	if *ecs.Positions[enemy] != before {
		t.Error("enemy moved during EMP")
	}

	ecs.Session.EmpTimer = 0
	ms.Update(0.1)
	if *ecs.Positions[enemy] == before {
		t.Error("enemy frozen after EMP expired")
	}
}

func TestCollectOverdriveStartsTimer(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	as := NewAbilitySystem(ecs, rng, dispatcher)

	pickup := addPowerUp(ecs, 500, 500, component.PowerOverdrive)
	as.Collect(pickup)

	if ecs.Session.OverdriveTimer != config.OverdriveDuration {
		t.Errorf("overdrive timer: got %v, want %v", ecs.Session.OverdriveTimer, config.OverdriveDuration)
	}
}

func TestCollectHealClampsAtMax(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	as := NewAbilitySystem(ecs, rng, dispatcher)
	ecs.Session.CoreHealth = ecs.Session.MaxCoreHealth - 1

	pickup := addPowerUp(ecs, 500, 500, component.PowerHeal)
	as.Collect(pickup)

	if ecs.Session.CoreHealth != ecs.Session.MaxCoreHealth {
		t.Errorf("core health: got %d, want %d", ecs.Session.CoreHealth, ecs.Session.MaxCoreHealth)
	}
	if len(ecs.Particles) == 0 {
		t.Error("heal pickup spawned no absorption particles")
	}
	for _, p := range ecs.Particles {
		if !p.Seeking {
			t.Error("heal particles must seek the core")
		}
	}
}

func TestCollectRefusesInactivePickup(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	as := NewAbilitySystem(ecs, rng, dispatcher)

	pickup := addPowerUp(ecs, 500, 500, component.PowerHeal)
	ecs.PowerUps[pickup].Active = false

	if as.Collect(pickup) {
		t.Error("collected an inactive power-up")
	}
}

func TestRingsExpandAndCutOff(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	as := NewAbilitySystem(ecs, rng, dispatcher)
	ecs.Session.EmpRingRadius = 10
	ecs.Session.PulseRingRadius = 10

	as.Update(0.1)
	if ecs.Session.EmpRingRadius <= 10 {
		t.Error("EMP ring did not expand")
	}
	if ecs.Session.PulseRingRadius <= 10 {
		t.Error("pulse ring did not expand")
	}

	ecs.Session.EmpRingRadius = config.EmpRingCutoff
	ecs.Session.PulseRingRadius = config.PulseRingCutoff
	as.Update(0.1)
	if ecs.Session.EmpRingRadius != 0 {
		t.Errorf("EMP ring past cutoff: got %v, want 0", ecs.Session.EmpRingRadius)
	}
	if ecs.Session.PulseRingRadius != 0 {
		t.Errorf("pulse ring past cutoff: got %v, want 0", ecs.Session.PulseRingRadius)
	}
}

func TestAbilityTimersCountDown(t *testing.T) {
	ecs, rng, dispatcher := newTestWorld(1)
	as := NewAbilitySystem(ecs, rng, dispatcher)
	ecs.Session.EmpTimer = 1.0
	ecs.Session.OverdriveTimer = 2.0

	as.Update(0.25)

	if ecs.Session.EmpTimer != 0.75 {
		t.Errorf("EMP timer: got %v, want 0.75", ecs.Session.EmpTimer)
	}
	if ecs.Session.OverdriveTimer != 1.75 {
		t.Errorf("overdrive timer: got %v, want 1.75", ecs.Session.OverdriveTimer)
	}
}
