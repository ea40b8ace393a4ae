// README: Order service validates commands and persists orders.
package order

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound          = errors.New("book not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrBadRequest        = errors.New("bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	CustomerName string
	Phone        string
	Address      string
	BookID       int64
	Quantity     int
}

func (c CreateCommand) validate() error {
	if strings.TrimSpace(c.CustomerName) == "" {
		return ErrBadRequest
	}
	if strings.TrimSpace(c.Phone) == "" {
		return ErrBadRequest
	}
	if strings.TrimSpace(c.Address) == "" {
		return ErrBadRequest
	}
	if c.BookID <= 0 {
		return ErrBadRequest
	}
	if c.Quantity <= 0 {
		return ErrBadRequest
	}
	return nil
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Order, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	o := &Order{
		CustomerName: strings.TrimSpace(cmd.CustomerName),
		Phone:        strings.TrimSpace(cmd.Phone),
		Address:      strings.TrimSpace(cmd.Address),
		BookID:       cmd.BookID,
		Quantity:     cmd.Quantity,
		Status:       StatusProcessing,
	}
	if err := s.store.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Order, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListByCustomer(ctx context.Context, customerName string) ([]CustomerOrder, error) {
	name := strings.TrimSpace(customerName)
	if name == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByCustomer(ctx, name)
}
