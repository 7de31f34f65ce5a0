package assets

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/dojo/config"
)

// SFXBank synthesizes sound effects from tone definitions and caches the
// PCM so playback never generates on the hot path. The PCM is signed 16-bit
// little-endian stereo, the format an ebiten audio context plays.
type SFXBank struct {
	sampleRate int
	tones      map[cfg.SoundID]cfg.ToneConfig
	cache      map[cfg.SoundID][]byte
}

// NewSFXBank creates a bank for the given tone table.
func NewSFXBank(sampleRate int, tones map[cfg.SoundID]cfg.ToneConfig) *SFXBank {
	return &SFXBank{
		sampleRate: sampleRate,
		tones:      tones,
		cache:      make(map[cfg.SoundID][]byte),
	}
}

// Preload synthesizes every tone up front.
func (b *SFXBank) Preload() {
	for id := range b.tones {
		b.PCM(id)
	}
}

// PCM returns the cached samples for a sound, or nil for an unknown one.
func (b *SFXBank) PCM(id cfg.SoundID) []byte {
	if data, ok := b.cache[id]; ok {
		return data
	}
	tone, ok := b.tones[id]
	if !ok {
		return nil
	}
	data := Synthesize(tone, b.sampleRate)
	b.cache[id] = data
	return data
}

// Synthesize renders a tone: a sine sweep from Frequency to SlideToFreq with
// a linear fade out.
func Synthesize(t cfg.ToneConfig, sampleRate int) []byte {
	n := sampleRate * t.DurationMs / 1000
	if n <= 0 || t.Frequency <= 0 {
		return nil
	}
	end := t.Frequency
	if t.SlideToFreq > 0 {
		end = t.SlideToFreq
	}
	vol := math.Max(0, math.Min(1, t.Volume))

	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Frequency + (end-t.Frequency)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := int16(math.Sin(phase) * vol * (1 - progress) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
