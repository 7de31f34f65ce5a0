package config

// ActionID represents a logical fighter action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionAttackLight
	ActionAttackMedium
	ActionAttackHeavy
	ActionDash
	ActionRoll
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:         "none",
	ActionLeft:         "left",
	ActionRight:        "right",
	ActionJump:         "jump",
	ActionAttackLight:  "attack_light",
	ActionAttackMedium: "attack_medium",
	ActionAttackHeavy:  "attack_heavy",
	ActionDash:         "dash",
	ActionRoll:         "roll",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ControlSchemeID selects a keyboard layout for one player.
type ControlSchemeID int

const (
	ControlSchemePlayer1 ControlSchemeID = iota // WASD + JKL
	ControlSchemePlayer2                        // Arrows + Numpad
)

// ControlSchemeKeys maps each scheme to key names per action. The names are
// resolved to device keys by the host, so this package stays headless.
var ControlSchemeKeys = map[ControlSchemeID]map[ActionID][]string{
	ControlSchemePlayer1: {
		ActionLeft:         {"A"},
		ActionRight:        {"D"},
		ActionJump:         {"W"},
		ActionAttackLight:  {"J"},
		ActionAttackMedium: {"K"},
		ActionAttackHeavy:  {"L"},
		ActionDash:         {"E"},
		ActionRoll:         {"Q"},
	},
	ControlSchemePlayer2: {
		ActionLeft:         {"ArrowLeft"},
		ActionRight:        {"ArrowRight"},
		ActionJump:         {"ArrowUp"},
		ActionAttackLight:  {"Numpad7"},
		ActionAttackMedium: {"Numpad8"},
		ActionAttackHeavy:  {"Numpad9"},
		ActionDash:         {"Numpad5"},
		ActionRoll:         {"Numpad4"},
	},
}
