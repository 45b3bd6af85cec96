package authstate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrNoAccount is returned by AccountLookup implementations when the server
// has no account for the queried credential. It is a defined outcome, not a
// transient failure.
var ErrNoAccount = errors.New("no server account")

// AccountLookup fetches the server-side account for a credential.
type AccountLookup interface {
	// ByPrincipal looks up the account for a federated provider subject id.
	ByPrincipal(ctx context.Context, uid string) (*Account, error)

	// ByStoredSession looks up the account behind the locally stored session
	// credential, if one is stored.
	ByStoredSession(ctx context.Context) (*Account, error)
}

// ProviderListener is the long-lived federated auth state source. It fires
// on every provider-side change, including sign-out from another tab.
type ProviderListener interface {
	// Subscribe registers a callback and returns a cancel function. The
	// callback receives nil when the provider session ends.
	Subscribe(onChange func(*Principal)) (cancel func())
}

const defaultRetryBase = 2 * time.Second

// maxRetryShift caps the backoff exponent so a long outage cannot overflow
// the shift into absurd or negative delays.
const maxRetryShift = 6

// Manager drives the reconciliation: it owns the snapshot, subscribes to the
// provider listener once, triggers server lookups, and notifies observers
// whenever the derived state changes.
type Manager struct {
	lookup    AccountLookup
	provider  ProviderListener
	logger    *slog.Logger
	retryBase time.Duration

	mu             sync.Mutex
	snap           Snapshot
	state          State
	observers      map[int]func(State)
	nextObserverID int

	// lookupSeq increments on every principal identity change. A lookup
	// result arriving with a stale sequence is discarded: the eventual state
	// must reflect the newest principal's lookup, never an older one's.
	lookupSeq int

	ctx            context.Context
	cancelCtx      context.CancelFunc
	cancelProvider func()
	started        bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for lookup failures.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithRetryBase sets the base delay for lookup retries. Delays double per
// consecutive failure for the same principal.
func WithRetryBase(d time.Duration) Option {
	return func(m *Manager) { m.retryBase = d }
}

// NewManager builds a Manager. Call Start to begin reconciling.
func NewManager(provider ProviderListener, lookup AccountLookup, opts ...Option) *Manager {
	m := &Manager{
		lookup:    lookup,
		provider:  provider,
		logger:    slog.Default(),
		retryBase: defaultRetryBase,
		state:     Checking,
		observers: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Start subscribes to the provider listener and kicks off the stored-session
// fetch. It is not safe to call twice.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()

		return
	}
	m.started = true
	m.ctx, m.cancelCtx = context.WithCancel(ctx)
	m.mu.Unlock()

	// The subscription is long-lived: every provider fire re-triggers
	// reconciliation, not just the initial mount.
	m.cancelProvider = m.provider.Subscribe(m.onProviderChange)

	go m.fetchStoredSession()
}

// Stop tears down the provider subscription and any in-flight lookups.
func (m *Manager) Stop() {
	if m.cancelProvider != nil {
		m.cancelProvider()
	}
	if m.cancelCtx != nil {
		m.cancelCtx()
	}
}

// State returns the current derived state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Observe registers a state observer and returns a cancel handle. The
// observer fires immediately with the current state, then on every change.
func (m *Manager) Observe(fn func(State)) (cancel func()) {
	m.mu.Lock()
	id := m.nextObserverID
	m.nextObserverID++
	m.observers[id] = fn
	current := m.state
	m.mu.Unlock()

	fn(current)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.observers, id)
	}
}

// onProviderChange handles every fire of the federated listener.
func (m *Manager) onProviderChange(principal *Principal) {
	m.mu.Lock()

	sameIdentity := m.snap.ProviderSettled && samePrincipal(m.snap.Principal, principal)
	m.snap.ProviderSettled = true
	m.snap.Principal = principal

	if sameIdentity {
		// Listener re-fired with the same identity; the existing lookup
		// result (or in-flight lookup) still applies.
		m.recomputeLocked()
		m.mu.Unlock()

		return
	}

	// New principal identity: invalidate any in-flight lookup and start over.
	m.lookupSeq++
	seq := m.lookupSeq
	m.snap.LookupSettled = false
	m.snap.LookupFailed = false
	m.snap.PrincipalAccount = nil

	m.recomputeLocked()
	uid := ""
	if principal != nil {
		uid = principal.UID
	}
	m.mu.Unlock()

	if principal != nil {
		go m.lookupPrincipal(seq, uid, 0)
	}
}

// lookupPrincipal resolves the server account for a principal. attempt counts
// consecutive failures for backoff.
func (m *Manager) lookupPrincipal(seq int, uid string, attempt int) {
	account, err := m.lookup.ByPrincipal(m.ctx, uid)

	m.mu.Lock()
	if seq != m.lookupSeq {
		// The principal changed while this lookup was in flight; the result
		// no longer describes the current identity. Drop it.
		m.mu.Unlock()

		return
	}

	switch {
	case err == nil:
		m.snap.LookupSettled = true
		m.snap.LookupFailed = false
		m.snap.PrincipalAccount = account
	case errors.Is(err, ErrNoAccount):
		m.snap.LookupSettled = true
		m.snap.LookupFailed = false
		m.snap.PrincipalAccount = nil
	default:
		// Transient failure: surface as retry-eligible rather than
		// discarding the provider session, and try again with backoff.
		m.snap.LookupSettled = true
		m.snap.LookupFailed = true
		m.snap.PrincipalAccount = nil
	}
	m.recomputeLocked()
	failed := m.snap.LookupFailed
	m.mu.Unlock()

	if !failed {
		return
	}

	m.logger.Warn("Account lookup failed, retrying", slog.String("uid", uid), slog.Any("error", err))

	select {
	case <-m.ctx.Done():
		return
	case <-time.After(m.retryDelay(attempt)):
	}

	m.mu.Lock()
	stale := seq != m.lookupSeq
	m.mu.Unlock()
	if stale {
		return
	}

	m.lookupPrincipal(seq, uid, attempt+1)
}

// retryDelay returns the backoff delay for the given consecutive-failure
// count, doubling per failure up to a fixed ceiling.
func (m *Manager) retryDelay(attempt int) time.Duration {
	if attempt > maxRetryShift {
		attempt = maxRetryShift
	}

	return m.retryBase << attempt
}

// fetchStoredSession resolves the locally stored session once at startup.
func (m *Manager) fetchStoredSession() {
	account, err := m.lookup.ByStoredSession(m.ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil && !errors.Is(err, ErrNoAccount) {
		m.logger.Warn("Stored session lookup failed", slog.Any("error", err))
		account = nil
	}

	m.snap.SessionSettled = true
	m.snap.SessionAccount = account
	m.recomputeLocked()
}

// recomputeLocked re-derives the state from the snapshot and notifies
// observers on change. Callers hold m.mu.
func (m *Manager) recomputeLocked() {
	next := Reconcile(m.snap)
	if next == m.state {
		return
	}
	m.state = next

	observers := make([]func(State), 0, len(m.observers))
	for _, fn := range m.observers {
		observers = append(observers, fn)
	}

	// Notify without holding the lock so observers can call back in.
	go func() {
		for _, fn := range observers {
			fn(next)
		}
	}()
}

func samePrincipal(a, b *Principal) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.UID == b.UID
}
