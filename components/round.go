package components

import (
	"github.com/automoto/dojo/config"
	"github.com/yohamta/donburi"
)

// EndReason says how a round ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndKO
	EndTime
)

func (r EndReason) String() string {
	switch r {
	case EndKO:
		return "ko"
	case EndTime:
		return "time"
	}
	return "none"
}

// Outcome is the result of a finished round. Winner is a fighter slot, or -1
// for a draw.
type Outcome struct {
	Reason EndReason
	Winner int
}

// Draw reports whether nobody won the round.
func (o Outcome) Draw() bool {
	return o.Winner < 0
}

// RoundData is the singleton round and match state.
type RoundData struct {
	Phase        config.RoundPhase
	TimerSeconds float64
	Active       bool
	Ended        bool
	Outcome      Outcome

	// ResetPendingMs counts down to the automatic reset after a round ends.
	// Zero means no reset is scheduled.
	ResetPendingMs float64

	RoundNumber int
	Wins        [2]int
	MatchWinner int // Slot that took the match, -1 while undecided
}

// MatchOver reports whether a fighter has reached the required round wins.
func (r *RoundData) MatchOver() bool {
	return r.MatchWinner >= 0
}

var Round = donburi.NewComponentType[RoundData]()
