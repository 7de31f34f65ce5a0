package animations

import "github.com/automoto/dojo/config"

// HitboxDef is an attack region active on one frame of a clip. Coordinates are
// in unscaled sprite pixels relative to the top-left of the unflipped frame.
type HitboxDef struct {
	Frame  int
	X, Y   float64
	Width  float64
	Height float64
	Damage int
}

// Clip is an immutable, timed sequence of frames shared by every fighter of
// the same archetype.
type Clip struct {
	Frames        []string
	FrameDuration float64 // ms each frame is displayed
	Loop          bool
	Hitboxes      []HitboxDef
}

// Len returns the number of frames.
func (c *Clip) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Frames)
}

// HitboxAt returns the hitbox definition for a frame index, if any.
func (c *Clip) HitboxAt(frame int) (HitboxDef, bool) {
	if c == nil {
		return HitboxDef{}, false
	}
	for _, hb := range c.Hitboxes {
		if hb.Frame == frame {
			return hb, true
		}
	}
	return HitboxDef{}, false
}

// State is the per-fighter playback cursor into a clip.
type State struct {
	Clip        config.StateID
	Frame       int
	Timer       float64 // ms accumulated on the current frame
	Finished    bool    // non-looping clip reached and holds its last frame
	FacingRight bool
}

// NewState returns a cursor positioned on the first frame of clip.
func NewState(clip config.StateID, facingRight bool) State {
	return State{Clip: clip, FacingRight: facingRight}
}

// SetAnimation switches to another clip. Requesting the current clip is a
// no-op so that held inputs do not restart the pose.
func (s *State) SetAnimation(clip config.StateID) {
	if s.Clip == clip {
		return
	}
	s.Restart(clip)
}

// Restart positions the cursor on frame 0 of clip even if it is already
// playing.
func (s *State) Restart(clip config.StateID) {
	s.Clip = clip
	s.Frame = 0
	s.Timer = 0
	s.Finished = false
}

// Advance moves the cursor forward by elapsedMs. At most one frame is advanced
// per call. A missing clip, an empty clip or a non-positive frame duration is
// a static pose and never advances.
func (s *State) Advance(clip *Clip, elapsedMs float64) {
	n := clip.Len()
	if n == 0 {
		return
	}
	if s.Frame >= n {
		// Clip was swapped for a shorter one.
		s.Frame = n - 1
	}
	if clip.FrameDuration <= 0 {
		return
	}

	s.Timer += elapsedMs
	if s.Timer < clip.FrameDuration {
		return
	}
	s.Timer = 0
	s.Frame++

	if s.Frame < n {
		return
	}
	if clip.Loop {
		s.Frame %= n
		return
	}
	s.Frame = n - 1
	s.Finished = true
}
