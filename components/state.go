package components

import (
	"github.com/automoto/dojo/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID

	// Remaining is the ms left in a timed state (dash, roll, hitstun).
	// Zero when the current state is not timed.
	Remaining float64
}

// Set changes the current state, remembering the previous one. Any timed
// countdown is cancelled.
func (s *StateData) Set(id config.StateID) {
	if s.CurrentState != id {
		s.PreviousState = s.CurrentState
	}
	s.CurrentState = id
	s.Remaining = 0
}

// SetTimed enters a state that reverts on its own after ms.
func (s *StateData) SetTimed(id config.StateID, ms float64) {
	s.Set(id)
	s.Remaining = ms
}

var State = donburi.NewComponentType[StateData]()
