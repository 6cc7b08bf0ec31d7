// Package leaderboard stores and ranks snake scores. A Service fronts a
// persistent store with an in-memory fallback so the terminal stays
// playable when the database is unavailable.
package leaderboard

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"
	"github.com/pkg/errors"

	"github.com/yashsuthar/termfolio"
)

const (
	// DefaultTopN is the standard leaderboard page size.
	DefaultTopN = 10

	// RecentN is how many latest submissions the live feed carries.
	RecentN = 5

	// MaxNameLength caps sanitized player names.
	MaxNameLength = 20

	// AnonymousName replaces names that sanitize down to nothing.
	AnonymousName = "Anonymous"

	statsTTL = 30 * time.Second
)

// Entry is one leaderboard row. Timestamp is unix nanoseconds; Rank is
// filled in by queries, not stored.
type Entry struct {
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
	Timestamp  int64  `json:"timestamp"`
	Rank       int    `json:"rank,omitempty"`
}

// PlayerStats summarizes one player's history.
type PlayerStats struct {
	PlayerName string `json:"playerName"`
	BestScore  int    `json:"bestScore"`
	Rank       int    `json:"rank"`
	GamesCount int    `json:"gamesCount"`
}

// ScoreStore is the persistence contract. Every submission is appended;
// ranking views collapse each player to their best score.
type ScoreStore interface {
	// Append records a submission. The entry's Timestamp must already be
	// set and unique across the store.
	Append(ctx context.Context, e Entry) error

	// TopN returns up to n entries, one per player (their best score),
	// ordered by score descending with earlier timestamps breaking ties.
	// Rank is populated starting at 1.
	TopN(ctx context.Context, n int) ([]Entry, error)

	// RecentN returns the n latest submissions, newest first, without
	// per-player collapsing. Rank is left zero.
	RecentN(ctx context.Context, n int) ([]Entry, error)

	// StatsFor returns aggregate stats for a sanitized player name, or
	// ErrNoSuchPlayer if the player has never submitted.
	StatsFor(ctx context.Context, name string) (PlayerStats, error)
}

// ErrNoSuchPlayer is returned by StatsFor for unknown players.
var ErrNoSuchPlayer = errors.New("no such player")

var (
	forbiddenChars = regexp.MustCompile(`[<>&"']`)
	spaceRuns      = regexp.MustCompile(`\s+`)
)

// SanitizeName strips markup-significant characters, collapses
// whitespace, trims, and caps the length. Empty results become
// AnonymousName.
func SanitizeName(name string) string {
	s := forbiddenChars.ReplaceAllString(name, "")
	s = spaceRuns.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if len(s) > MaxNameLength {
		s = strings.TrimSpace(s[:MaxNameLength])
	}
	if s == "" {
		return AnonymousName
	}
	return s
}

// Service wraps a primary store with an in-memory fallback and a short
// stats cache. All reads and writes go to the primary first; on error
// the fallback serves instead, so scores submitted during an outage
// survive for the life of the process.
type Service struct {
	primary  ScoreStore
	fallback *MemStore
	stats    cache.Cache[string, PlayerStats]
	stamp    uint64
}

func NewService(primary ScoreStore) *Service {
	return &Service{
		primary:  primary,
		fallback: NewMemStore(),
		stats:    cache.NewCache[string, PlayerStats]().WithTTL(statsTTL),
	}
}

// Submit sanitizes the name, stamps the entry, and appends it. The
// returned entry carries the stored name and timestamp.
func (s *Service) Submit(ctx context.Context, name string, score int) (Entry, error) {
	if score < 0 {
		return Entry{}, errors.New("negative score")
	}
	e := Entry{
		PlayerName: SanitizeName(name),
		Score:      score,
		Timestamp:  int64(termfolio.Increment(&s.stamp)),
	}
	if err := s.appendStore(ctx, e); err != nil {
		return Entry{}, err
	}
	s.stats.Invalidate(e.PlayerName)
	return e, nil
}

func (s *Service) appendStore(ctx context.Context, e Entry) error {
	if s.primary != nil {
		err := s.primary.Append(ctx, e)
		if err == nil {
			return nil
		}
		log.Printf("leaderboard: primary store append failed, using fallback: %v", err)
	}
	return termfolio.WithStack(s.fallback.Append(ctx, e))
}

// TopN returns the collapsed, ranked leaderboard.
func (s *Service) TopN(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		n = DefaultTopN
	}
	if s.primary != nil {
		top, err := s.primary.TopN(ctx, n)
		if err == nil {
			return top, nil
		}
		log.Printf("leaderboard: primary store read failed, using fallback: %v", err)
	}
	return s.fallback.TopN(ctx, n)
}

// Recent returns the latest submissions, newest first.
func (s *Service) Recent(ctx context.Context) ([]Entry, error) {
	if s.primary != nil {
		recent, err := s.primary.RecentN(ctx, RecentN)
		if err == nil {
			return recent, nil
		}
		log.Printf("leaderboard: primary store read failed, using fallback: %v", err)
	}
	return s.fallback.RecentN(ctx, RecentN)
}

// StatsFor returns cached aggregate stats for a player. The raw name is
// sanitized before lookup.
func (s *Service) StatsFor(ctx context.Context, name string) (PlayerStats, error) {
	clean := SanitizeName(name)
	if stats, ok := s.stats.Get(clean); ok {
		return stats, nil
	}
	stats, err := s.statsStore(ctx, clean)
	if err != nil {
		return PlayerStats{}, err
	}
	s.stats.Set(clean, stats, statsTTL)
	return stats, nil
}

func (s *Service) statsStore(ctx context.Context, clean string) (PlayerStats, error) {
	if s.primary != nil {
		stats, err := s.primary.StatsFor(ctx, clean)
		if err == nil || errors.Is(err, ErrNoSuchPlayer) {
			return stats, err
		}
		log.Printf("leaderboard: primary store read failed, using fallback: %v", err)
	}
	return s.fallback.StatsFor(ctx, clean)
}
