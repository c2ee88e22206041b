package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/authgate/internal/client/api"
	"github.com/dmitrijs2005/authgate/internal/client/session"
	"github.com/dmitrijs2005/authgate/internal/common"
)

func stubInputs(t *testing.T, email string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

type fakeSession struct {
	state   session.State
	profile *api.Profile

	signupEmail string
	signupPass  string
	signupErr   error

	loginEmail string
	loginPass  string
	loginErr   error

	logoutCalled bool
	logoutErr    error
}

func (f *fakeSession) State() session.State          { return f.state }
func (f *fakeSession) Profile() *api.Profile         { return f.profile }
func (f *fakeSession) Load(_ context.Context) error  { return nil }
func (f *fakeSession) Signup(_ context.Context, email, password string) (*api.Profile, error) {
	f.signupEmail, f.signupPass = email, password
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return &api.Profile{ID: "u1", Email: email}, nil
}
func (f *fakeSession) Login(_ context.Context, email, password string) (*api.Profile, error) {
	f.loginEmail, f.loginPass = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.state = session.StateAuthenticated
	f.profile = &api.Profile{ID: "u1", Email: email}
	return f.profile, nil
}
func (f *fakeSession) Logout(_ context.Context) error {
	f.logoutCalled = true
	f.state = session.StateUnauthenticated
	f.profile = nil
	return f.logoutErr
}

func TestRegister_Success(t *testing.T) {
	silencePrintln(t)
	f := &fakeSession{state: session.StateUnauthenticated}
	a := &App{session: f}

	restore := stubInputs(t, "alice@example.org", []byte("secret1"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.signupEmail != "alice@example.org" {
		t.Fatalf("Register email mismatch: %q", f.signupEmail)
	}
	if f.signupPass != "secret1" {
		t.Fatalf("Register pass mismatch: %q", f.signupPass)
	}
	if f.state != session.StateUnauthenticated {
		t.Fatalf("register must not change auth state")
	}
}

func TestRegister_ServiceErrorDoesNotStopREPL(t *testing.T) {
	silencePrintln(t)
	f := &fakeSession{signupErr: common.ErrAlreadyExists}
	a := &App{session: f}

	restore := stubInputs(t, "alice@example.org", []byte("secret1"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("service errors must be swallowed, got: %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	silencePrintln(t)
	f := &fakeSession{state: session.StateUnauthenticated}
	a := &App{session: f}

	restore := stubInputs(t, "alice@example.org", []byte("secret1"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginEmail != "alice@example.org" || f.loginPass != "secret1" {
		t.Fatalf("credentials mismatch: %q %q", f.loginEmail, f.loginPass)
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected authenticated state after login")
	}
}

func TestLogin_FailureKeepsState(t *testing.T) {
	silencePrintln(t)
	f := &fakeSession{loginErr: common.ErrUnauthorized}
	a := &App{session: f}

	restore := stubInputs(t, "alice@example.org", []byte("wrong"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("auth errors must be swallowed, got: %v", err)
	}
	if a.isLoggedIn() {
		t.Fatalf("must stay unauthenticated after failed login")
	}
}

func TestLogout(t *testing.T) {
	silencePrintln(t)
	f := &fakeSession{state: session.StateAuthenticated, profile: &api.Profile{Email: "a@x.com"}}
	a := &App{session: f}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatalf("session.Logout not called")
	}
	if a.isLoggedIn() {
		t.Fatalf("expected unauthenticated state after logout")
	}
}

func TestLogout_ErrorPropagates(t *testing.T) {
	silencePrintln(t)
	f := &fakeSession{logoutErr: errors.New("clean-fail")}
	a := &App{session: f}
	if err := a.Logout(context.Background()); err == nil {
		t.Fatalf("want error from session.Logout")
	}
}

func TestGetStatus(t *testing.T) {
	a := &App{session: &fakeSession{profile: &api.Profile{Email: "a@x.com"}}}
	if got := a.getStatus(); got != "(a@x.com)" {
		t.Fatalf("got %q", got)
	}

	a = &App{session: &fakeSession{}}
	if got := a.getStatus(); got != "" {
		t.Fatalf("got %q", got)
	}
}
