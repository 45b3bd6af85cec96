package authstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	ready := &Account{UserID: "u1", Email: "user@example.com", Role: "tutor"}
	roleless := &Account{UserID: "u1", Email: "user@example.com"}
	principal := &Principal{UID: "uid-1", Email: "user@example.com"}

	tests := []struct {
		name string
		snap Snapshot
		want State
	}{
		{
			name: "nothing settled",
			snap: Snapshot{},
			want: Checking,
		},
		{
			name: "provider settled, session pending",
			snap: Snapshot{ProviderSettled: true},
			want: Checking,
		},
		{
			name: "session settled, provider pending",
			snap: Snapshot{SessionSettled: true},
			want: Checking,
		},
		{
			name: "all settled, no signals",
			snap: Snapshot{ProviderSettled: true, SessionSettled: true},
			want: Unauthenticated,
		},
		{
			name: "principal present, lookup pending",
			snap: Snapshot{ProviderSettled: true, SessionSettled: true, Principal: principal},
			want: Checking,
		},
		{
			name: "principal with no server account",
			snap: Snapshot{
				ProviderSettled: true, SessionSettled: true,
				Principal: principal, LookupSettled: true,
			},
			want: FederatedNoServerUser,
		},
		{
			name: "principal with failing lookup keeps provider session",
			snap: Snapshot{
				ProviderSettled: true, SessionSettled: true,
				Principal: principal, LookupSettled: true, LookupFailed: true,
			},
			want: FederatedNoServerUser,
		},
		{
			name: "principal with roleless account",
			snap: Snapshot{
				ProviderSettled: true, SessionSettled: true,
				Principal: principal, LookupSettled: true, PrincipalAccount: roleless,
			},
			want: NeedsRole,
		},
		{
			name: "principal with complete account",
			snap: Snapshot{
				ProviderSettled: true, SessionSettled: true,
				Principal: principal, LookupSettled: true, PrincipalAccount: ready,
			},
			want: Ready,
		},
		{
			name: "session account only",
			snap: Snapshot{
				ProviderSettled: true, SessionSettled: true,
				SessionAccount: ready,
			},
			want: Ready,
		},
		{
			name: "session account without role",
			snap: Snapshot{
				ProviderSettled: true, SessionSettled: true,
				SessionAccount: roleless,
			},
			want: NeedsRole,
		},
		{
			name: "principal outranks session account",
			snap: Snapshot{
				ProviderSettled: true, SessionSettled: true,
				Principal: principal, LookupSettled: true,
				SessionAccount: ready,
			},
			// The provider principal has no server account; the stale local
			// session must not mask that.
			want: FederatedNoServerUser,
		},
		{
			name: "signed out provider with stored session",
			snap: Snapshot{
				ProviderSettled: true, SessionSettled: true,
				SessionAccount: ready,
				// Lookup leftovers from a previous principal are ignored once
				// the principal is gone.
				LookupSettled: true, PrincipalAccount: roleless,
			},
			want: Ready,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reconcile(tt.snap), "state: %s", Reconcile(tt.snap))
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "checking", Checking.String())
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "unknown", State(99).String())
}
