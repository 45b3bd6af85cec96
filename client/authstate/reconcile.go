package authstate

// Principal is the identity asserted by the federated provider's listener.
type Principal struct {
	UID   string
	Email string
}

// Account is the server's view of the signed-in user.
type Account struct {
	UserID string
	Email  string
	Role   string // empty until onboarding completes
}

// Snapshot is the complete current knowledge of all identity sources.
// Reconciliation always recomputes from a snapshot rather than patching
// prior state, so re-entrant invocations cannot interleave incorrectly.
type Snapshot struct {
	// ProviderSettled is true once the federated listener has fired at least once.
	ProviderSettled bool
	// Principal is the current provider principal, nil when signed out.
	Principal *Principal

	// SessionSettled is true once the stored-session fetch has resolved.
	SessionSettled bool
	// SessionAccount is the account behind the stored local session, if any.
	SessionAccount *Account

	// LookupSettled is true once the server lookup for the current principal
	// has resolved. Reset whenever the principal identity changes.
	LookupSettled bool
	// LookupFailed is true when that lookup failed transiently (network, 500).
	// Distinct from "no account": a failed lookup is retried, a missing
	// account routes to onboarding.
	LookupFailed bool
	// PrincipalAccount is the account the lookup found, nil when none exists.
	PrincipalAccount *Account
}

// Reconcile maps a snapshot to exactly one state. It is a pure function:
// every state transition in the package goes through it.
func Reconcile(s Snapshot) State {
	if !s.ProviderSettled || !s.SessionSettled {
		return Checking
	}

	// A live provider principal outranks the local session, matching the
	// server's mechanism priority.
	if s.Principal != nil {
		if !s.LookupSettled {
			return Checking
		}
		// A failing lookup must not fall back to Unauthenticated while a
		// valid provider principal exists; it stays retry-eligible.
		if s.LookupFailed || s.PrincipalAccount == nil {
			return FederatedNoServerUser
		}

		return accountState(s.PrincipalAccount)
	}

	if s.SessionAccount != nil {
		return accountState(s.SessionAccount)
	}

	return Unauthenticated
}

func accountState(account *Account) State {
	if account.Role == "" {
		return NeedsRole
	}

	return Ready
}
