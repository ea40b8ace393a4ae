// README: Catalog store backed by PostgreSQL with a Redis title cache.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"bookbot/internal/types"
)

const (
	titlesCacheKey = "catalog:titles"
	// The catalog changes rarely; a short TTL keeps the fuzzy-match pool fresh
	// enough without hitting Postgres on every turn.
	titlesCacheTTL = 5 * time.Minute
)

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewStore(db *pgxpool.Pool, redis *redis.Client) *Store {
	return &Store{db: db, redis: redis}
}

func (s *Store) List(ctx context.Context) ([]Book, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, author, price, stock, category
		FROM books
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (s *Store) FindByTitle(ctx context.Context, title string) (*Book, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, title, author, price, stock, category
		FROM books
		WHERE lower(title) = lower($1)`, title)

	b, err := scanBook(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) Search(ctx context.Context, title string) ([]Book, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, author, price, stock, category
		FROM books
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY id`, title)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

// Titles returns every catalog title, serving from the Redis cache when
// possible. Cache failures fall through to Postgres; a stale or missing cache
// must never fail a turn.
func (s *Store) Titles(ctx context.Context) ([]string, error) {
	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, titlesCacheKey).Result(); err == nil {
			var titles []string
			if json.Unmarshal([]byte(raw), &titles) == nil {
				return titles, nil
			}
		}
	}

	rows, err := s.db.Query(ctx, `SELECT title FROM books ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if s.redis != nil {
		if raw, err := json.Marshal(titles); err == nil {
			_ = s.redis.Set(ctx, titlesCacheKey, raw, titlesCacheTTL).Err()
		}
	}
	return titles, nil
}

func scanBook(row pgx.Row) (*Book, error) {
	var b Book
	var price int64
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &price, &b.Stock, &b.Category); err != nil {
		return nil, err
	}
	b.Price = types.VND(price)
	return &b, nil
}

func scanBooks(rows pgx.Rows) ([]Book, error) {
	var books []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}
