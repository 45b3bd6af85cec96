// Package authstate reconciles the client's asynchronous identity sources
// into a single routing state. It mirrors the server's identity resolution:
// the same signals, decided independently so the client can route before and
// between server round-trips.
package authstate

// State is the client's routing mode, derived from the current snapshot of
// all identity sources. Exactly one state holds at any time.
type State int

const (
	// Checking holds while at least one identity source has not settled yet.
	Checking State = iota
	// Unauthenticated means every source settled and none produced a principal.
	Unauthenticated
	// FederatedNoServerUser means the provider asserts a principal but the
	// server has no matching account (or the lookup is failing and being
	// retried). The provider session is kept, never discarded.
	FederatedNoServerUser
	// NeedsRole means the server account exists but onboarding is incomplete.
	NeedsRole
	// Ready means the server account exists with a role; normal routing applies.
	Ready
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Checking:
		return "checking"
	case Unauthenticated:
		return "unauthenticated"
	case FederatedNoServerUser:
		return "federated_no_server_user"
	case NeedsRole:
		return "needs_role"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}
