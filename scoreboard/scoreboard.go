// Package scoreboard persists finished garden rounds in SQLite and ranks
// them.
package scoreboard

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

//go:embed sql/*.sql
var migrations embed.FS

// DefaultLimit is used by Top when no positive limit is given.
const DefaultLimit = 20

// Result is one finished round.
type Result struct {
	ID         int64     `json:"id"`
	Player     string    `json:"player"`
	Score      int       `json:"score"`
	Tiles      int       `json:"tiles"`
	BonusTiles int       `json:"bonus_tiles"`
	Seed       uint64    `json:"seed"`
	FinishedAt time.Time `json:"finished_at"`
}

// Board is a scoreboard backed by a SQLite database.
type Board struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Open opens (creating when missing) the database at path and applies
// pending migrations.
func Open(ctx context.Context, path string, logger zerolog.Logger) (*Board, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	b := &Board{db: db, logger: logger}
	if err := b.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return b, nil
}

// migrate applies every embedded migration not yet recorded in _migrations,
// each inside its own transaction.
func (b *Board) migrate(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := b.db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			b.logger.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := b.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		b.logger.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Record stores a result and returns it with its ID and timestamp filled.
// A zero FinishedAt is replaced with the current time.
func (b *Board) Record(ctx context.Context, r Result) (Result, error) {
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	r.FinishedAt = r.FinishedAt.UTC()

	res, err := b.db.ExecContext(ctx, `
		INSERT INTO results (player, score, tiles, bonus_tiles, seed, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.Player, r.Score, r.Tiles, r.BonusTiles, int64(r.Seed), r.FinishedAt,
	)
	if err != nil {
		return Result{}, fmt.Errorf("insert result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Result{}, fmt.Errorf("insert result: %w", err)
	}
	r.ID = id

	b.logger.Debug().
		Int64("id", id).
		Str("player", r.Player).
		Int("score", r.Score).
		Msg("result recorded")
	return r, nil
}

// Top returns the best results: highest score first, then most tiles, then
// earliest finish.
func (b *Board) Top(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := b.db.QueryContext(ctx, `
		SELECT id, player, score, tiles, bonus_tiles, seed, finished_at
		FROM results
		ORDER BY score DESC, tiles DESC, finished_at ASC, id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		var seed int64
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.Tiles, &r.BonusTiles, &seed, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Seed = uint64(seed)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of recorded results.
func (b *Board) Count(ctx context.Context) (int, error) {
	var n int
	if err := b.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return n, nil
}

// Close releases the database.
func (b *Board) Close() error {
	return b.db.Close()
}
