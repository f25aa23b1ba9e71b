// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the ebiten frontend.
type State interface {
	Enter()
	Update() error
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine switches between states and forwards the ebiten callbacks to the current one.
type StateMachine struct {
	current State
}

// NewStateMachine creates a machine without an initial state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state, if any, and enters the new one.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update() error {
	if sm.current != nil {
		return sm.current.Update()
	}
	return nil
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
