package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/authgate/internal/client/api"
	"github.com/dmitrijs2005/authgate/internal/client/config"
	"github.com/dmitrijs2005/authgate/internal/client/session"
)

// sessionManager is the slice of session.Manager the CLI needs. Tests
// substitute a stub.
type sessionManager interface {
	State() session.State
	Profile() *api.Profile
	Load(ctx context.Context) error
	Login(ctx context.Context, email string, password string) (*api.Profile, error)
	Signup(ctx context.Context, email string, password string) (*api.Profile, error)
	Logout(ctx context.Context) error
}

type App struct {
	config  *config.Config
	session sessionManager
	api     api.Client
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerEndpoint, c.RequestTimeout)

	manager := session.NewManager(apiClient, session.NewSQLiteStore(db))
	apiClient.SetTokenSource(manager)

	return &App{config: c, session: manager, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

// getStatus renders the prompt decoration: the email of the logged-in user,
// or nothing when unauthenticated.
func (a *App) getStatus() string {
	if p := a.session.Profile(); p != nil {
		return fmt.Sprintf("(%s)", p.Email)
	}
	return ""
}

// Run restores a persisted session and hands control to the REPL. It blocks
// until the user exits.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Load(ctx); err != nil {
		log.Printf("could not restore session: %s", err.Error())
	}

	printlnFn("Welcome to authgate CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
