package config

// StateID identifies a fighter action state. It doubles as the clip key in a
// character's animation table.
type StateID int

// RoundPhase represents the current phase of a round.
type RoundPhase int

const (
	RoundWaiting RoundPhase = iota // Created, no round started yet
	RoundActive                    // Fighters are being simulated
	RoundEnded                     // Outcome decided, reset pending
)

func (p RoundPhase) String() string {
	switch p {
	case RoundWaiting:
		return "waiting"
	case RoundActive:
		return "active"
	case RoundEnded:
		return "ended"
	}
	return "unknown"
}

// StateNone marks the absence of a state or clip.
const StateNone StateID = -1

const (
	Idle StateID = iota
	Run
	Jump
	Fall
	AttackLight
	AttackMedium
	AttackHeavy
	Hit
	Block
	Crouch
	Dash
	Roll
	KO
)

// StateNames maps StateID to the name used by character data files.
var StateNames = map[StateID]string{
	Idle:         "idle",
	Run:          "run",
	Jump:         "jump",
	Fall:         "fall",
	AttackLight:  "attackLight",
	AttackMedium: "attackMedium",
	AttackHeavy:  "attackHeavy",
	Hit:          "hit",
	Block:        "block",
	Crouch:       "crouch",
	Dash:         "dash",
	Roll:         "roll",
	KO:           "ko",
}

func (s StateID) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStateID resolves a data-file state name.
func ParseStateID(name string) (StateID, bool) {
	for id, n := range StateNames {
		if n == name {
			return id, true
		}
	}
	return StateNone, false
}

// IsAttack reports whether s is one of the ATTACK_* states.
func (s StateID) IsAttack() bool {
	return s == AttackLight || s == AttackMedium || s == AttackHeavy
}

// AttackKind selects one of the three attack strengths.
type AttackKind int

const (
	AttackKindLight AttackKind = iota
	AttackKindMedium
	AttackKindHeavy
)

// State returns the action state an attack of this kind enters. The second
// result is false for values outside the closed set.
func (k AttackKind) State() (StateID, bool) {
	switch k {
	case AttackKindLight:
		return AttackLight, true
	case AttackKindMedium:
		return AttackMedium, true
	case AttackKindHeavy:
		return AttackHeavy, true
	}
	return StateNone, false
}

func (k AttackKind) String() string {
	switch k {
	case AttackKindLight:
		return "light"
	case AttackKindMedium:
		return "medium"
	case AttackKindHeavy:
		return "heavy"
	}
	return "unknown"
}
