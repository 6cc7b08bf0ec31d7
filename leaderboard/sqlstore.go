package leaderboard

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/yashsuthar/termfolio"
)

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	player_name TEXT NOT NULL,
	score INTEGER NOT NULL,
	created_at INTEGER NOT NULL UNIQUE
);
CREATE INDEX IF NOT EXISTS scores_by_player ON scores (player_name, score DESC);
CREATE INDEX IF NOT EXISTS scores_by_score ON scores (score DESC, created_at ASC);
`

// SQLStore is the persistent ScoreStore backed by SQLite. Every
// submission is a row; ranking queries collapse players to their best
// score with a window function.
type SQLStore struct {
	db *sqlx.DB
}

// OpenSQLStore opens (creating if needed) the score database at path.
func OpenSQLStore(path string) (*SQLStore, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, termfolio.WithStack(err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, termfolio.WithStack(err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Close() error {
	return termfolio.WithStack(s.db.Close())
}

type scoreRow struct {
	PlayerName string `db:"player_name"`
	Score      int    `db:"score"`
	CreatedAt  int64  `db:"created_at"`
}

func (s *SQLStore) Append(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO scores (player_name, score, created_at) VALUES (?, ?, ?)",
		e.PlayerName, e.Score, e.Timestamp)
	return termfolio.WithStack(err)
}

func (s *SQLStore) TopN(ctx context.Context, n int) ([]Entry, error) {
	var rows []scoreRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT player_name, score, created_at FROM (
			SELECT player_name, score, created_at,
				ROW_NUMBER() OVER (
					PARTITION BY player_name
					ORDER BY score DESC, created_at ASC
				) AS pos
			FROM scores
		) WHERE pos = 1
		ORDER BY score DESC, created_at ASC
		LIMIT ?`, n)
	if err != nil {
		return nil, termfolio.WithStack(err)
	}
	top := make([]Entry, len(rows))
	for i, row := range rows {
		top[i] = Entry{
			PlayerName: row.PlayerName,
			Score:      row.Score,
			Timestamp:  row.CreatedAt,
			Rank:       i + 1,
		}
	}
	return top, nil
}

func (s *SQLStore) RecentN(ctx context.Context, n int) ([]Entry, error) {
	var rows []scoreRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT player_name, score, created_at FROM scores
		ORDER BY created_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, termfolio.WithStack(err)
	}
	recent := make([]Entry, len(rows))
	for i, row := range rows {
		recent[i] = Entry{
			PlayerName: row.PlayerName,
			Score:      row.Score,
			Timestamp:  row.CreatedAt,
		}
	}
	return recent, nil
}

func (s *SQLStore) StatsFor(ctx context.Context, name string) (PlayerStats, error) {
	stats := PlayerStats{PlayerName: name}
	// MAX over an empty set yields NULL rather than no rows.
	var best sql.NullInt64
	err := s.db.GetContext(ctx, &best,
		"SELECT MAX(score) FROM scores WHERE player_name = ?", name)
	if err != nil {
		return PlayerStats{}, termfolio.WithStack(err)
	}
	if !best.Valid {
		return PlayerStats{}, ErrNoSuchPlayer
	}
	stats.BestScore = int(best.Int64)
	if err := s.db.GetContext(ctx, &stats.GamesCount,
		"SELECT COUNT(*) FROM scores WHERE player_name = ?", name); err != nil {
		return PlayerStats{}, termfolio.WithStack(err)
	}
	var higher int
	if err := s.db.GetContext(ctx, &higher, `
		SELECT COUNT(DISTINCT best) FROM (
			SELECT MAX(score) AS best FROM scores GROUP BY player_name
		) WHERE best > ?`, stats.BestScore); err != nil {
		return PlayerStats{}, termfolio.WithStack(err)
	}
	stats.Rank = 1 + higher
	return stats, nil
}
