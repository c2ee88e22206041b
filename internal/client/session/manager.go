package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/authgate/internal/client/api"
)

// State of the client session.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// Manager is the session object owned by the application root and handed to
// the components that need it; session state is never read ambiently.
// Token and cached profile are set and cleared together, in memory and in
// the store.
//
// Load must run once at startup before any gating decision is made. It does
// not validate token expiry locally; a stale token is discovered on the
// first rejected request.
type Manager struct {
	api     api.Client
	store   Store
	token   string
	profile *api.Profile
}

func NewManager(client api.Client, store Store) *Manager {
	return &Manager{api: client, store: store}
}

// Token implements api.TokenSource: outgoing requests carry the current
// token, or nothing when logged out.
func (m *Manager) Token() string {
	return m.token
}

func (m *Manager) State() State {
	if m.token != "" {
		return StateAuthenticated
	}
	return StateUnauthenticated
}

// Profile returns the cached profile, or nil when unauthenticated.
func (m *Manager) Profile() *api.Profile {
	return m.profile
}

// Load restores a previously persisted session. A token without a readable
// profile (or vice versa) is treated as no session.
func (m *Manager) Load(ctx context.Context) error {
	token, profileRaw, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("session load error: %w", err)
	}

	if token == "" || len(profileRaw) == 0 {
		return nil
	}

	profile := &api.Profile{}
	if err := json.Unmarshal(profileRaw, profile); err != nil {
		return nil
	}

	m.token = token
	m.profile = profile
	return nil
}

// Login authenticates against the server and, on success, persists the
// token and profile together before transitioning to authenticated.
// On failure the session stays exactly as it was.
func (m *Manager) Login(ctx context.Context, email string, password string) (*api.Profile, error) {
	token, profile, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	profileRaw, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("profile encode error: %w", err)
	}

	if err := m.store.Save(ctx, token, profileRaw); err != nil {
		return nil, fmt.Errorf("session save error: %w", err)
	}

	m.token = token
	m.profile = profile
	return profile, nil
}

// Signup creates an account. Authentication state does not change; the
// caller is expected to follow up with Login.
func (m *Manager) Signup(ctx context.Context, email string, password string) (*api.Profile, error) {
	return m.api.Signup(ctx, email, password)
}

// Logout clears the persisted and in-memory session. This is purely local:
// the server-side token stays valid until its natural expiry.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.store.Clear(ctx)

	m.token = ""
	m.profile = nil

	if err != nil {
		return fmt.Errorf("session clear error: %w", err)
	}
	return nil
}
