package authstate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	mu       sync.Mutex
	onChange func(*Principal)
}

func (p *fakeProvider) Subscribe(onChange func(*Principal)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onChange = onChange

	return func() {}
}

func (p *fakeProvider) fire(principal *Principal) {
	p.mu.Lock()
	fn := p.onChange
	p.mu.Unlock()
	fn(principal)
}

type fakeLookup struct {
	byPrincipal func(ctx context.Context, uid string) (*Account, error)
	bySession   func(ctx context.Context) (*Account, error)
}

func (l *fakeLookup) ByPrincipal(ctx context.Context, uid string) (*Account, error) {
	return l.byPrincipal(ctx, uid)
}

func (l *fakeLookup) ByStoredSession(ctx context.Context) (*Account, error) {
	if l.bySession == nil {
		return nil, ErrNoAccount
	}

	return l.bySession(ctx)
}

func waitForState(t *testing.T, m *Manager, want State) {
	t.Helper()
	require.Eventually(t, func() bool {
		return m.State() == want
	}, time.Second, 5*time.Millisecond, "expected state %s, stuck at %s", want, m.State())
}

func TestManager_StoredSessionOnly(t *testing.T) {
	provider := &fakeProvider{}
	lookup := &fakeLookup{
		bySession: func(ctx context.Context) (*Account, error) {
			return &Account{UserID: "u1", Role: "parent"}, nil
		},
	}

	m := NewManager(provider, lookup)
	m.Start(context.Background())
	defer m.Stop()

	assert.Equal(t, Checking, m.State())

	// Provider settles with no principal; the stored session carries the day.
	provider.fire(nil)

	waitForState(t, m, Ready)
}

func TestManager_NoSignals_Unauthenticated(t *testing.T) {
	provider := &fakeProvider{}
	lookup := &fakeLookup{}

	m := NewManager(provider, lookup)
	m.Start(context.Background())
	defer m.Stop()

	provider.fire(nil)

	waitForState(t, m, Unauthenticated)
}

func TestManager_PrincipalWithAccount_Ready(t *testing.T) {
	provider := &fakeProvider{}
	lookup := &fakeLookup{
		byPrincipal: func(ctx context.Context, uid string) (*Account, error) {
			return &Account{UserID: "u1", Role: "tutor"}, nil
		},
	}

	m := NewManager(provider, lookup)
	m.Start(context.Background())
	defer m.Stop()

	provider.fire(&Principal{UID: "uid-1"})

	waitForState(t, m, Ready)

	// Provider sign-out drops straight to unauthenticated.
	provider.fire(nil)

	waitForState(t, m, Unauthenticated)
}

func TestManager_PrincipalWithoutAccount_RoutesToOnboarding(t *testing.T) {
	provider := &fakeProvider{}
	lookup := &fakeLookup{
		byPrincipal: func(ctx context.Context, uid string) (*Account, error) {
			return nil, ErrNoAccount
		},
	}

	m := NewManager(provider, lookup)
	m.Start(context.Background())
	defer m.Stop()

	provider.fire(&Principal{UID: "uid-new"})

	waitForState(t, m, FederatedNoServerUser)
}

func TestManager_StaleLookupResultDiscarded(t *testing.T) {
	release := make(chan struct{})
	provider := &fakeProvider{}
	lookup := &fakeLookup{
		byPrincipal: func(ctx context.Context, uid string) (*Account, error) {
			if uid == "uid-slow" {
				<-release
				// Would produce NeedsRole if it were ever applied.
				return &Account{UserID: "u-slow"}, nil
			}

			return &Account{UserID: "u-fast", Role: "student"}, nil
		},
	}

	m := NewManager(provider, lookup)
	m.Start(context.Background())
	defer m.Stop()

	provider.fire(&Principal{UID: "uid-slow"})
	provider.fire(&Principal{UID: "uid-fast"})

	waitForState(t, m, Ready)

	// The slow lookup for the superseded principal finishes now; its result
	// must not overwrite the newer principal's state.
	close(release)
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, Ready, m.State())
}

func TestManager_TransientLookupFailureRetries(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	provider := &fakeProvider{}
	lookup := &fakeLookup{
		byPrincipal: func(ctx context.Context, uid string) (*Account, error) {
			mu.Lock()
			calls++
			failing := calls == 1
			mu.Unlock()
			if failing {
				return nil, assert.AnError
			}

			return &Account{UserID: "u1", Role: "tutor"}, nil
		},
	}

	m := NewManager(provider, lookup, WithRetryBase(10*time.Millisecond))
	m.Start(context.Background())
	defer m.Stop()

	provider.fire(&Principal{UID: "uid-1"})

	// First the failure surfaces as retry-eligible, then the retry lands.
	waitForState(t, m, Ready)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, calls)
}

func TestManager_ObserverNotifiedOnChange(t *testing.T) {
	provider := &fakeProvider{}
	lookup := &fakeLookup{
		byPrincipal: func(ctx context.Context, uid string) (*Account, error) {
			return &Account{UserID: "u1", Role: "tutor"}, nil
		},
	}

	m := NewManager(provider, lookup)

	var mu sync.Mutex
	var seen []State
	cancel := m.Observe(func(s State) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, s)
	})
	defer cancel()

	m.Start(context.Background())
	defer m.Stop()

	provider.fire(&Principal{UID: "uid-1"})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(seen) > 0 && seen[len(seen)-1] == Ready
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, Checking, seen[0])
}

func TestManager_RetryDelayCapped(t *testing.T) {
	m := NewManager(&fakeProvider{}, &fakeLookup{}, WithRetryBase(time.Second))

	assert.Equal(t, time.Second, m.retryDelay(0))
	assert.Equal(t, 8*time.Second, m.retryDelay(3))
	assert.Equal(t, 64*time.Second, m.retryDelay(maxRetryShift))
	// Attempts past the ceiling hold the ceiling delay instead of overflowing
	// the shift.
	assert.Equal(t, 64*time.Second, m.retryDelay(40))
	assert.Equal(t, 64*time.Second, m.retryDelay(200))
}
