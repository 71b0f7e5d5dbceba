package system

import (
	"math"
	"testing"

	"vector-defense/internal/component"
	"vector-defense/internal/config"
)

func TestEnemiesAdvanceTowardCore(t *testing.T) {
	ecs, _, _ := newTestWorld(1)
	ms := NewMovementSystem(ecs)

	id := addEnemy(ecs, config.CoreX+200, config.CoreY, 5, 100, 5)
	ms.Update(0.5)

	pos := ecs.Positions[id]
	if math.Abs(pos.X-(config.CoreX+150)) > 1e-9 {
		t.Errorf("x after 0.5s at speed 100: got %v, want %v", pos.X, config.CoreX+150)
	}
	if math.Abs(pos.Y-config.CoreY) > 1e-9 {
		t.Errorf("y drifted off the radial path: %v", pos.Y)
	}
}

func TestSlowedEnemiesMoveAtReducedSpeed(t *testing.T) {
	ecs, _, _ := newTestWorld(1)
	ms := NewMovementSystem(ecs)

	id := addEnemy(ecs, config.CoreX+200, config.CoreY, 5, 100, 5)
	ecs.SlowEffects[id] = &component.SlowEffect{Timer: 1.5}
	ms.Update(0.5)

	pos := ecs.Positions[id]
	want := config.CoreX + 200 - 100*config.SlowSpeedFactor*0.5
	if math.Abs(pos.X-want) > 1e-9 {
		t.Errorf("slowed x: got %v, want %v", pos.X, want)
	}
}

func TestSlowEffectExpires(t *testing.T) {
	ecs, _, _ := newTestWorld(1)
	ss := NewStatusEffectSystem(ecs)

	id := addEnemy(ecs, 300, 300, 5, 100, 5)
	ecs.SlowEffects[id] = &component.SlowEffect{Timer: 0.3}

	ss.Update(0.2)
	if _, ok := ecs.SlowEffects[id]; !ok {
		t.Fatal("slow effect expired early")
	}
	ss.Update(0.2)
	if _, ok := ecs.SlowEffects[id]; ok {
		t.Error("slow effect outlived its timer")
	}
}
