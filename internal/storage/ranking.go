package storage

import (
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// RankingSize is the number of entries kept in the ranking.
const RankingSize = 10

// MaxNameLen is the maximum player name length in runes.
const MaxNameLen = 8

// DefaultName replaces an empty player name.
const DefaultName = "anon"

// RankEntry is one row of the ranking.
type RankEntry struct {
	ID        int64
	Name      string
	Score     int
	CreatedAt time.Time
}

// Ranking is a persistent top-N score list. Entries are ordered by score
// descending, ties by insertion order, and never exceed RankingSize.
type Ranking interface {
	ListTopScores() ([]RankEntry, error)
	RecordScore(name string, score int) error
}

var (
	_ Ranking = (*Store)(nil)
	_ Ranking = (*MemoryRanking)(nil)
)

// NormalizeName trims surrounding whitespace, substitutes DefaultName for
// an empty name and truncates to MaxNameLen runes.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		name = string([]rune(name)[:MaxNameLen])
	}
	return name
}

// Qualifies reports whether a score would enter the given ranking.
func Qualifies(entries []RankEntry, score int) bool {
	if len(entries) < RankingSize {
		return true
	}
	return score > entries[len(entries)-1].Score
}

// MemoryRanking is an in-process Ranking, used when no database is
// available. It is safe for concurrent use.
type MemoryRanking struct {
	mu      sync.Mutex
	entries []RankEntry
	nextID  int64
	now     func() time.Time
}

// NewMemoryRanking creates an empty in-memory ranking.
func NewMemoryRanking() *MemoryRanking {
	return &MemoryRanking{now: time.Now}
}

// ListTopScores returns a copy of the ranking, best first.
func (m *MemoryRanking) ListTopScores() ([]RankEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]RankEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

// RecordScore inserts an entry and keeps the best RankingSize.
func (m *MemoryRanking) RecordScore(name string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.entries = append(m.entries, RankEntry{
		ID:        m.nextID,
		Name:      NormalizeName(name),
		Score:     score,
		CreatedAt: m.now(),
	})
	sort.SliceStable(m.entries, func(i, j int) bool {
		return m.entries[i].Score > m.entries[j].Score
	})
	if len(m.entries) > RankingSize {
		m.entries = m.entries[:RankingSize]
	}
	return nil
}
