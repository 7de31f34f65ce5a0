package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/quasilyte/gdata"
)

const (
	historyKey = "match_history"

	// DefaultLimit caps how many rounds are kept on disk.
	DefaultLimit = 50
)

// Storage is the key/value surface the store needs. *gdata.Manager
// satisfies it.
type Storage interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Record describes one finished round.
type Record struct {
	Match        int       `json:"match"`
	Round        int       `json:"round"`
	Reason       string    `json:"reason"`
	Winner       int       `json:"winner"` // 0 or 1, -1 for a draw
	P1Archetype  string    `json:"p1Archetype"`
	P2Archetype  string    `json:"p2Archetype"`
	P1Health     int       `json:"p1Health"`
	P2Health     int       `json:"p2Health"`
	TimerSeconds float64   `json:"timerSeconds"`
	MatchWinner  int       `json:"matchWinner"` // -1 until the match is decided
	At           time.Time `json:"at"`
}

// History is the persisted list of recent rounds, oldest first.
type History struct {
	Records []Record `json:"records"`
}

// Wins counts round wins per slot across the stored history.
func (h History) Wins() [2]int {
	var wins [2]int
	for _, r := range h.Records {
		if r.Winner == 0 || r.Winner == 1 {
			wins[r.Winner]++
		}
	}
	return wins
}

// Store appends round records to a Storage.
type Store struct {
	storage Storage
	limit   int
}

func NewStore(s Storage, limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{storage: s, limit: limit}
}

// Open returns a store backed by the platform data directory for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	return NewStore(m, DefaultLimit), nil
}

// ErrCorrupt marks stored history that could not be parsed.
var ErrCorrupt = errors.New("parse history")

// Load reads the stored history. Nothing saved yet is an empty history.
func (s *Store) Load() (History, error) {
	data, err := s.storage.LoadItem(historyKey)
	if err != nil {
		return History{}, fmt.Errorf("load history: %w", err)
	}
	if data == nil {
		return History{}, nil
	}
	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return History{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return h, nil
}

// Append adds a record and drops the oldest ones past the limit. A corrupt
// history is replaced rather than blocking new records; a failed read leaves
// the stored history untouched.
func (s *Store) Append(r Record) error {
	h, err := s.Load()
	if err != nil {
		if !errors.Is(err, ErrCorrupt) {
			return err
		}
		h = History{}
	}
	h.Records = append(h.Records, r)
	if over := len(h.Records) - s.limit; over > 0 {
		h.Records = h.Records[over:]
	}

	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("serialize history: %w", err)
	}
	if err := s.storage.SaveItem(historyKey, data); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
