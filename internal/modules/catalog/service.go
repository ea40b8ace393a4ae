// README: Catalog service; read-only queries over the book table.
package catalog

import (
	"context"
	"strings"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.store.List(ctx)
}

// FindByTitle resolves a title with a case-insensitive exact match, as used
// at order-commit time.
func (s *Service) FindByTitle(ctx context.Context, title string) (*Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrNotFound
	}
	return s.store.FindByTitle(ctx, title)
}

func (s *Service) Search(ctx context.Context, title string) ([]Book, error) {
	return s.store.Search(ctx, strings.TrimSpace(title))
}

// ListTitles supplies the candidate pool for fuzzy title matching.
func (s *Service) ListTitles(ctx context.Context) ([]string, error) {
	return s.store.Titles(ctx)
}
