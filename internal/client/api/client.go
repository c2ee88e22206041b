// Package api provides the HTTP client the CLI uses to talk to the authgate
// backend. Every response is normalized into the sentinel error kinds from
// internal/common, so callers branch on errors.Is instead of inspecting
// transport details.
package api

import (
	"context"
	"time"
)

// Profile is the user profile as returned by the server.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty token means the request goes out unauthenticated; protected
// endpoints will reject it server-side.
type TokenSource interface {
	Token() string
}

type Client interface {
	Signup(ctx context.Context, email string, password string) (*Profile, error)
	Login(ctx context.Context, email string, password string) (string, *Profile, error)
	Me(ctx context.Context) (*Profile, error)
	Ping(ctx context.Context) error
}
