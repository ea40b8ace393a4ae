// README: LLM quota service; guards a Generator with a daily call budget.
package aiusage

import "context"

// Service orchestrates LLM call-budget logic.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// UseCall deducts one call from the key's daily allowance.
// If the row does not exist yet it is initialised and the call is
// immediately consumed. Returns ErrQuotaExceeded when the budget for
// the current day is exhausted.
func (s *Service) UseCall(ctx context.Context, key string) error {
	err := s.store.UseCall(ctx, key)
	if err != ErrQuotaExceeded {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureKey(ctx, key); initErr != nil {
		return initErr
	}
	return s.store.UseCall(ctx, key)
}

// Generator matches the text-generation provider the limiter wraps.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// LimitedGenerator consumes one quota call per Generate. When the
// budget is spent it returns ErrQuotaExceeded without touching the
// model, so callers fall back to their canned replies.
type LimitedGenerator struct {
	svc   *Service
	inner Generator
	key   string
}

// Limit wraps gen with the daily call budget tracked under key.
func Limit(gen Generator, svc *Service, key string) *LimitedGenerator {
	return &LimitedGenerator{svc: svc, inner: gen, key: key}
}

func (l *LimitedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := l.svc.UseCall(ctx, l.key); err != nil {
		return "", err
	}
	return l.inner.Generate(ctx, prompt)
}
