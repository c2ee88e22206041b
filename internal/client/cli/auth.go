package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/authgate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to create
// a new account. Registration does not log the user in; on success the user
// is told to follow up with login.
//
// The password byte slice is securely wiped before returning. Any I/O error
// is returned unchanged; service errors are reported to the user and nil is
// returned so the REPL keeps going.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.session.Signup(ctx, email, string(password)); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return nil
	}

	printlnFn("Success! You can now log in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the session is persisted, so the user stays logged in across
// restarts.
//
// The password is securely wiped before returning. Failed attempts are
// reported to the user; the session stays as it was.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	profile, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return nil
	}

	printlnFn(fmt.Sprintf("Logged in as %s", profile.Email))
	return nil
}

// Logout discards the local session. The server-side token is not revoked
// and stays valid until its natural expiry.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		log.Printf("Logout error: %s", err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}
