package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/config"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

// credentials is the validated shape of a signup request: a syntactically
// valid email and a password of at least 6 characters.
type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Signup validates the credentials, hashes the password and stores a new
// user record. Validation happens before any store access. No token is
// issued here; login is a separate step.
func (s *Service) Signup(ctx context.Context, email string, password string) (*Profile, error) {

	if err := validate.Struct(credentials{Email: email, Password: password}); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrValidation, validationMessage(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, common.ErrInternal
	}

	return user.Profile(), nil
}

// Login verifies the credentials and issues a session token together with
// the sanitized profile. An unknown email and a wrong password return the
// exact same error so responses never reveal whether an email is registered.
func (s *Service) Login(ctx context.Context, email string, password string) (string, *Profile, error) {

	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrUnauthorized
		}
		return "", nil, common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrInternal
	}

	return token, user.Profile(), nil
}

// Authenticate verifies a bearer token and returns the subject user id.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

// GetProfile returns the sanitized profile for a previously authenticated
// user id.
func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrInternal
	}
	return user.Profile(), nil
}

// validationMessage converts the first field error into a human-readable
// message without leaking validator internals to clients.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid input"
	}
	switch verrs[0].Field() {
	case "Email":
		return "a valid email address is required"
	case "Password":
		return "password must be at least 6 characters"
	default:
		return "invalid input"
	}
}
