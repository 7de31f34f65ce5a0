package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundLightHit
	SoundMediumHit
	SoundHeavyHit
	SoundKO
	// Movement sounds
	SoundJump
	SoundDash
	// Round sounds
	SoundRoundStart
	SoundRoundEnd
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneConfig describes a synthesized sound effect. There are no audio files
// shipped with the game, every effect is generated at startup.
type ToneConfig struct {
	Frequency   float64 // Hz
	DurationMs  int
	Volume      float64
	SlideToFreq float64 // 0 = constant pitch
}

// SoundConfig maps sound IDs to tone definitions
type SoundConfig struct {
	Tones map[SoundID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundLightHit:   {Frequency: 520, DurationMs: 60, Volume: 0.6},
			SoundMediumHit:  {Frequency: 380, DurationMs: 90, Volume: 0.7},
			SoundHeavyHit:   {Frequency: 220, DurationMs: 140, Volume: 0.9, SlideToFreq: 120},
			SoundKO:         {Frequency: 440, DurationMs: 600, Volume: 0.9, SlideToFreq: 80},
			SoundJump:       {Frequency: 300, DurationMs: 80, Volume: 0.3, SlideToFreq: 600},
			SoundDash:       {Frequency: 900, DurationMs: 70, Volume: 0.25, SlideToFreq: 400},
			SoundRoundStart: {Frequency: 660, DurationMs: 250, Volume: 0.5},
			SoundRoundEnd:   {Frequency: 330, DurationMs: 400, Volume: 0.5},
		},
	}
}
