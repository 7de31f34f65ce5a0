package input

import "github.com/automoto/dojo/components"

// Step holds an intent for a number of ticks. One-shot intents (jump,
// attack, dash, roll) fire on the first tick of the step only; movement is
// held for the whole step.
type Step struct {
	Ticks  int
	Intent components.Intent
}

// Script is a scripted controller, used for training dummies and tests.
type Script struct {
	Steps []Step
	Loop  bool

	step int
	tick int
}

func NewScript(loop bool, steps ...Step) *Script {
	return &Script{Steps: steps, Loop: loop}
}

// Done reports whether a non-looping script has run out of steps.
func (s *Script) Done() bool {
	return !s.Loop && s.step >= len(s.Steps)
}

func (s *Script) Poll() components.Intent {
	if len(s.Steps) == 0 {
		return components.Intent{}
	}
	if s.step >= len(s.Steps) {
		if !s.Loop {
			return components.Intent{}
		}
		s.step = 0
	}

	cur := s.Steps[s.step]
	in := components.Intent{Move: cur.Intent.Move}
	if s.tick == 0 {
		in = cur.Intent
	}

	s.tick++
	if s.tick >= cur.Ticks {
		s.tick = 0
		s.step++
	}
	return in
}

// Rewind starts the script over.
func (s *Script) Rewind() {
	s.step, s.tick = 0, 0
}
