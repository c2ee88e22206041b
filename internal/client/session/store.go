// Package session owns the client-side session: the bearer token and the
// cached user profile, persisted between runs in a local SQLite database
// under fixed keys, the way a browser app keeps them in localStorage.
package session

import "context"

// Fixed storage keys for the persisted session state.
const (
	keyToken   = "auth_token"
	keyProfile = "user_profile"
)

// Store persists the session between runs. Save and Clear act on token and
// profile together, so the two can never diverge on disk.
type Store interface {
	// Load returns the persisted token and serialized profile. Absent
	// values come back empty with a nil error.
	Load(ctx context.Context) (token string, profile []byte, err error)

	// Save persists token and profile atomically.
	Save(ctx context.Context, token string, profile []byte) error

	// Clear removes both values atomically.
	Clear(ctx context.Context) error
}
