package leaderboard

import (
	"context"
	"sort"
	"sync"
)

// memCap bounds the in-memory history so a long outage can't grow it
// without limit.
const memCap = 100

// MemStore is the in-memory ScoreStore used as the Service fallback and
// in tests. When full it evicts the lowest-scoring entry, so the top of
// the board survives an outage even if the tail doesn't.
type MemStore struct {
	mutex   sync.RWMutex
	entries []Entry // append order, oldest first
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Append(_ context.Context, e Entry) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.entries = append(m.entries, e)
	if len(m.entries) > memCap {
		evict := 0
		for i, candidate := range m.entries {
			worst := m.entries[evict]
			if candidate.Score < worst.Score ||
				(candidate.Score == worst.Score && candidate.Timestamp > worst.Timestamp) {
				evict = i
			}
		}
		m.entries = append(m.entries[:evict], m.entries[evict+1:]...)
	}
	return nil
}

func (m *MemStore) TopN(_ context.Context, n int) ([]Entry, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	best := map[string]Entry{}
	for _, e := range m.entries {
		prev, found := best[e.PlayerName]
		if !found || e.Score > prev.Score || (e.Score == prev.Score && e.Timestamp < prev.Timestamp) {
			best[e.PlayerName] = e
		}
	}

	top := make([]Entry, 0, len(best))
	for _, e := range best {
		top = append(top, e)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Score != top[j].Score {
			return top[i].Score > top[j].Score
		}
		return top[i].Timestamp < top[j].Timestamp
	})
	if len(top) > n {
		top = top[:n]
	}
	for i := range top {
		top[i].Rank = i + 1
	}
	return top, nil
}

func (m *MemStore) RecentN(_ context.Context, n int) ([]Entry, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	recent := make([]Entry, 0, n)
	for i := len(m.entries) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, m.entries[i])
	}
	return recent, nil
}

func (m *MemStore) StatsFor(_ context.Context, name string) (PlayerStats, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	stats := PlayerStats{PlayerName: name, BestScore: -1}
	for _, e := range m.entries {
		if e.PlayerName != name {
			continue
		}
		stats.GamesCount++
		if e.Score > stats.BestScore {
			stats.BestScore = e.Score
		}
	}
	if stats.GamesCount == 0 {
		return PlayerStats{}, ErrNoSuchPlayer
	}

	// Rank is 1 plus the number of distinct scores strictly above the
	// player's best, matching the collapsed leaderboard view.
	higher := map[int]bool{}
	bestByPlayer := map[string]int{}
	for _, e := range m.entries {
		if cur, found := bestByPlayer[e.PlayerName]; !found || e.Score > cur {
			bestByPlayer[e.PlayerName] = e.Score
		}
	}
	for _, score := range bestByPlayer {
		if score > stats.BestScore {
			higher[score] = true
		}
	}
	stats.Rank = 1 + len(higher)
	return stats, nil
}
