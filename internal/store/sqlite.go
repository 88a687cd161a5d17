package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/priyankc/wordup/internal/streak"
)

// Meta keys. Streak state and the last-completed day live in a small
// key-value table; a missing or malformed value reads as zero.
const (
	metaStreakCount      = "streak_count"
	metaLastActiveDate   = "last_active_date"
	metaLastCompletedDay = "last_completed_day"
)

// sqliteProgressRepo implements ProgressRepo on SQLite.
type sqliteProgressRepo struct {
	db *sql.DB
}

var _ ProgressRepo = (*sqliteProgressRepo)(nil)

func (r *sqliteProgressRepo) Scores(ctx context.Context) (map[int]ScoreRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day, correct, total, pct, completed_at FROM scores`)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()

	scores := make(map[int]ScoreRecord)
	for rows.Next() {
		var rec ScoreRecord
		if err := rows.Scan(&rec.Day, &rec.Correct, &rec.Total, &rec.Pct, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		scores[rec.Day] = rec
	}
	return scores, rows.Err()
}

func (r *sqliteProgressRepo) SaveScore(ctx context.Context, rec ScoreRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO scores (day, correct, total, pct, completed_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Day, rec.Correct, rec.Total, rec.Pct, rec.Timestamp)
	if err != nil {
		return fmt.Errorf("upsert score for day %d: %w", rec.Day, err)
	}
	return nil
}

func (r *sqliteProgressRepo) Streak(ctx context.Context) (streak.State, error) {
	var st streak.State

	if v, ok := r.getMeta(ctx, metaStreakCount); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			st.Count = n
		}
	}
	if v, ok := r.getMeta(ctx, metaLastActiveDate); ok {
		if t, err := time.ParseInLocation(metaDateLayout, v, time.Local); err == nil {
			st.LastActive = t
		}
	}
	return st, nil
}

func (r *sqliteProgressRepo) SaveStreak(ctx context.Context, st streak.State) error {
	if err := r.setMeta(ctx, metaStreakCount, strconv.Itoa(st.Count)); err != nil {
		return err
	}
	return r.setMeta(ctx, metaLastActiveDate, st.LastActive.Format(metaDateLayout))
}

func (r *sqliteProgressRepo) LastCompletedDay(ctx context.Context) (int, error) {
	if v, ok := r.getMeta(ctx, metaLastCompletedDay); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n, nil
		}
	}
	return 0, nil
}

func (r *sqliteProgressRepo) SaveLastCompletedDay(ctx context.Context, day int) error {
	return r.setMeta(ctx, metaLastCompletedDay, strconv.Itoa(day))
}

func (r *sqliteProgressRepo) AppendCompletion(ctx context.Context, c Completion) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO completions (session_id, day, correct, total, pct, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.SessionID, c.Day, c.Correct, c.Total, c.Pct, c.Timestamp)
	if err != nil {
		return fmt.Errorf("append completion: %w", err)
	}
	return nil
}

func (r *sqliteProgressRepo) Completions(ctx context.Context, limit int) ([]Completion, error) {
	query := `SELECT session_id, day, correct, total, pct, completed_at
		FROM completions ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query completions: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		if err := rows.Scan(&c.SessionID, &c.Day, &c.Correct, &c.Total, &c.Pct, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *sqliteProgressRepo) Reset(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM scores`,
		`DELETE FROM completions`,
		`DELETE FROM meta`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	return tx.Commit()
}

// getMeta returns the stored value for key. ok is false when absent.
func (r *sqliteProgressRepo) getMeta(ctx context.Context, key string) (string, bool) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&v)
	if err != nil {
		return "", false
	}
	return v, true
}

func (r *sqliteProgressRepo) setMeta(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("set meta %s: %w", key, err)
	}
	return nil
}
