// README: Order store backed by PostgreSQL.
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Create decrements stock and inserts the order in one transaction.
// Either both happen or neither does.
func (s *Store) Create(ctx context.Context, o *Order) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE books
		SET stock = stock - $1
		WHERE id = $2 AND stock >= $1`,
		o.Quantity, o.BookID,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the book vanished or there is not enough stock left.
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, o.BookID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check book: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrInsufficientStock
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_name, phone, address, book_id, quantity, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		o.CustomerName, o.Phone, o.Address, o.BookID, o.Quantity, o.Status,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	return tx.Commit(ctx)
}

func (s *Store) Get(ctx context.Context, id int64) (*Order, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, customer_name, phone, address, book_id, quantity, status, created_at
		FROM orders
		WHERE id = $1`, id,
	)

	var o Order
	err := row.Scan(&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.BookID, &o.Quantity, &o.Status, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByCustomer returns a customer's orders, newest first, joined with
// the book title for display. The name comparison is case-insensitive.
func (s *Store) ListByCustomer(ctx context.Context, customerName string) ([]CustomerOrder, error) {
	rows, err := s.db.Query(ctx, `
		SELECT o.id, b.title, o.quantity, o.status
		FROM orders o
		JOIN books b ON b.id = o.book_id
		WHERE lower(o.customer_name) = lower($1)
		ORDER BY o.created_at DESC`, customerName,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CustomerOrder
	for rows.Next() {
		var co CustomerOrder
		if err := rows.Scan(&co.ID, &co.BookTitle, &co.Quantity, &co.Status); err != nil {
			return nil, err
		}
		out = append(out, co)
	}
	return out, rows.Err()
}
