package authstate

import (
	"net/http"
	"sync"
)

// Store holds the durable session credential. Implementations back it with
// whatever persistence the client platform offers; MemoryStore is the
// process-local default.
type Store interface {
	// Load returns the stored session token, or "" when none is stored.
	Load() string

	// Save replaces the stored session token.
	Save(token string)

	// Clear removes the stored session token.
	Clear()
}

// MemoryStore is a mutex-guarded in-process Store.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore builds an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token
}

func (s *MemoryStore) Save(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Transport attaches the stored session credential to outgoing requests and
// evicts it on any 401 response, so a revoked session cannot keep being
// replayed.
type Transport struct {
	Store Store

	// Base is the underlying round tripper. http.DefaultTransport when nil.
	Base http.RoundTripper

	// OnEvict fires after a 401 clears the store, letting the caller
	// re-trigger reconciliation.
	OnEvict func()
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.Store.Load(); token != "" && req.Header.Get("Authorization") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && t.Store.Load() != "" {
		t.Store.Clear()
		if t.OnEvict != nil {
			t.OnEvict()
		}
	}

	return resp, nil
}
