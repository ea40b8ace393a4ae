// README: LLM usage persistence.
package aiusage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles llm_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// UseCall atomically checks the daily quota and deducts one call.
// It resets the counter to DefaultCalls when last_reset_day is behind
// the current day. Returns ErrQuotaExceeded when 0 rows are updated
// (quota exhausted or key absent).
func (s *Store) UseCall(ctx context.Context, key string) error {
	today := time.Now().Format("2006-01-02")

	tag, err := s.db.Exec(ctx, `
		UPDATE llm_usage SET
			calls_remaining = CASE WHEN last_reset_day != $1 THEN $2 - 1 ELSE calls_remaining - 1 END,
			last_reset_day = $1
		WHERE key = $3 AND (last_reset_day < $1 OR calls_remaining > 0)
	`, today, DefaultCalls, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExceeded
	}
	return nil
}

// EnsureKey inserts a new llm_usage row for key with the default call
// allowance. If the row already exists the insert is silently skipped.
func (s *Store) EnsureKey(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO llm_usage (key, calls_remaining, last_reset_day)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO NOTHING
	`, key, DefaultCalls, time.Now().Format("2006-01-02"))
	return err
}
