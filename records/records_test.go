package records

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	items   map[string][]byte
	saveErr error
	loadErr error
}

func newMemStorage() *memStorage {
	return &memStorage{items: map[string][]byte{}}
}

func (m *memStorage) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStorage) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func TestLoadEmpty(t *testing.T) {
	s := NewStore(newMemStorage(), 0)
	h, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, h.Records)
}

func TestAppendAndLoad(t *testing.T) {
	s := NewStore(newMemStorage(), 0)
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Append(Record{Match: 1, Round: 1, Reason: "KO", Winner: 0, P1Health: 40, At: at}))
	require.NoError(t, s.Append(Record{Match: 1, Round: 2, Reason: "TIME", Winner: -1, At: at}))
	require.NoError(t, s.Append(Record{Match: 1, Round: 3, Reason: "KO", Winner: 1, At: at}))

	h, err := s.Load()
	require.NoError(t, err)
	require.Len(t, h.Records, 3)
	assert.Equal(t, 40, h.Records[0].P1Health)
	assert.True(t, h.Records[0].At.Equal(at))
	assert.Equal(t, [2]int{1, 1}, h.Wins(), "draws are not wins")
}

func TestAppendTrimsOldest(t *testing.T) {
	s := NewStore(newMemStorage(), 3)
	for i := 1; i <= 5; i++ {
		require.NoError(t, s.Append(Record{Round: i}))
	}
	h, err := s.Load()
	require.NoError(t, err)
	require.Len(t, h.Records, 3)
	assert.Equal(t, 3, h.Records[0].Round)
	assert.Equal(t, 5, h.Records[2].Round)
}

func TestCorruptHistory(t *testing.T) {
	m := newMemStorage()
	m.items[historyKey] = []byte("{not json")
	s := NewStore(m, 0)

	_, err := s.Load()
	require.ErrorIs(t, err, ErrCorrupt)

	require.NoError(t, s.Append(Record{Round: 1}))
	h, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, h.Records, 1)
}

func TestSaveError(t *testing.T) {
	m := newMemStorage()
	m.saveErr = errors.New("disk full")
	err := NewStore(m, 0).Append(Record{Round: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, m.saveErr)
}

func TestReadErrorKeepsHistory(t *testing.T) {
	m := newMemStorage()
	s := NewStore(m, 0)
	for i := 1; i <= 5; i++ {
		require.NoError(t, s.Append(Record{Round: i}))
	}

	m.loadErr = errors.New("device busy")
	err := s.Append(Record{Round: 6})
	require.ErrorIs(t, err, m.loadErr)
	assert.NotErrorIs(t, err, ErrCorrupt)

	m.loadErr = nil
	h, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, h.Records, 5)
}
