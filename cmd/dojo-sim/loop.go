package main

import (
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/round"
)

// SimLoop steps a round controller until the match is decided.
type SimLoop struct {
	round    *round.Controller
	tickRate int
	maxTicks int
	ticks    int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewSimLoop(c *round.Controller, tickRate, maxTicks int) *SimLoop {
	return &SimLoop{
		round:    c,
		tickRate: tickRate,
		maxTicks: maxTicks,
		stopChan: make(chan struct{}),
	}
}

func (l *SimLoop) Run() {
	dtMs := 1000 / float64(cfg.C.TPS)
	l.round.StartRound()

	var tick <-chan time.Time
	if l.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	for l.ticks < l.maxTicks {
		if tick != nil {
			select {
			case <-l.stopChan:
				log.Println("Simulation stopped")
				return
			case <-tick:
			}
		} else {
			select {
			case <-l.stopChan:
				log.Println("Simulation stopped")
				return
			default:
			}
		}

		l.round.Update(dtMs)
		l.ticks++

		if s := l.round.State(); s.MatchOver() {
			log.Printf("Player %d takes match %d after %d ticks (%d - %d)",
				s.MatchWinner+1, l.round.Match(), l.ticks, s.Wins[0], s.Wins[1])
			return
		}
	}
	log.Printf("Tick limit %d reached without a match winner", l.maxTicks)
}

func (l *SimLoop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

type logPresenter struct{}

func (logPresenter) ShowMessage(text string, d time.Duration) {
	log.Printf("%s (%v)", text, d)
}

func (logPresenter) Present(f round.Frame) {
	for _, h := range f.Hits {
		log.Printf("P%d hits P%d with %s for %d", h.AttackerSlot+1, h.DefenderSlot+1, h.Kind, h.Damage)
	}
}
