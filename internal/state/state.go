// internal/state/state.go
package state

import (
	"vector-defense/internal/audio"
	"vector-defense/internal/config"
	"vector-defense/internal/score"
)

// State is the interface every screen implements.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw()
	Exit()
}

// Env carries the collaborators shared by every screen.
type Env struct {
	Settings config.Settings
	Audio    *audio.Service
	Scores   *score.Store
}

// StateMachine manages the current screen.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state and enters the new one.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update advances the current state.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw renders the current state.
func (sm *StateMachine) Draw() {
	if sm.current != nil {
		sm.current.Draw()
	}
}
