// README: Session persistence (Redis-backed, with an in-memory fallback for tests).
package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps conversation state between turns. Get returns
// (nil, nil) when the session has no stored state yet.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*State, error)
	Put(ctx context.Context, sessionID string, st *State) error
}

// sessionTTL is refreshed on every write, so a session expires only
// after this much idle time.
const sessionTTL = 24 * time.Hour

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*State, error) {
	raw, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		// Corrupt state is unrecoverable; start the session over.
		return nil, nil
	}
	return &st, nil
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, st *State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sessionID), raw, sessionTTL).Err(); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// MemoryStore is a process-local SessionStore used in tests and when
// Redis is not configured.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]State)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	cp := st
	return &cp, nil
}

func (s *MemoryStore) Put(_ context.Context, sessionID string, st *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = *st
	return nil
}
