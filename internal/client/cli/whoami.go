package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/authgate/internal/common"
)

// Whoami fetches the profile of the logged-in user from the server. When the
// server rejects the stored token (it has expired since the last run), the
// local session is dropped so the gate reflects reality.
func (a *App) Whoami(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in. Use 'login' first.")
		return nil
	}

	profile, err := a.api.Me(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) || errors.Is(err, common.ErrTokenExpired) || errors.Is(err, common.ErrInvalidToken) {
			printlnFn("Session expired, please log in again.")
			return a.session.Logout(ctx)
		}
		log.Printf("Request failed: %s", err.Error())
		return nil
	}

	printlnFn(fmt.Sprintf("Logged in as %s (id %s)", profile.Email, profile.ID))
	return nil
}

// Ping checks server reachability.
func (a *App) Ping(ctx context.Context) error {
	if err := a.api.Ping(ctx); err != nil {
		printlnFn("Server is unreachable")
		return nil
	}
	printlnFn("Server is up")
	return nil
}
