package main

import (
	"github.com/automoto/dojo/assets"
	cfg "github.com/automoto/dojo/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type sfxPlayer struct {
	context *audio.Context
	bank    *assets.SFXBank
	volume  float64
}

func newSFXPlayer() *sfxPlayer {
	p := &sfxPlayer{
		context: audio.NewContext(cfg.Audio.SampleRate),
		bank:    assets.NewSFXBank(cfg.Audio.SampleRate, cfg.Sound.Tones),
		volume:  cfg.Audio.DefaultSFXVol,
	}
	p.bank.Preload()
	return p
}

func (p *sfxPlayer) play(ids []cfg.SoundID) {
	if p == nil || p.volume <= 0 {
		return
	}
	for _, id := range ids {
		pcm := p.bank.PCM(id)
		if pcm == nil {
			continue
		}
		player := p.context.NewPlayerFromBytes(pcm)
		player.SetVolume(p.volume)
		player.Play()
	}
}
