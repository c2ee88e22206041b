package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/users"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	users  *users.Service
	logger logging.Logger
}

func NewHandler(us *users.Service, l logging.Logger) *Handler {
	return &Handler{users: us, logger: l}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	User *users.Profile `json:"user"`
}

type loginResponse struct {
	Token string         `json:"token"`
	User  *users.Profile `json:"user"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the uniform error body: a machine-checkable kind plus a
// human-readable message.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// writeError maps a service error to its HTTP status and wire shape.
// Unexpected errors become a generic 500; their details stay in the logs.
func writeError(c echo.Context, err error) error {
	kind := common.KindOf(err)

	switch kind {
	case common.KindValidation:
		// the sentinel prefix is implied by the kind; send the detail only
		msg := strings.TrimPrefix(err.Error(), common.ErrValidation.Error()+": ")
		return c.JSON(http.StatusBadRequest, ErrorResponse{Kind: kind, Message: msg})
	case common.KindConflict:
		return c.JSON(http.StatusConflict, ErrorResponse{Kind: kind, Message: common.ErrAlreadyExists.Error()})
	case common.KindUnauthorized:
		msg := common.ErrUnauthorized.Error()
		if errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrTokenExpired) {
			msg = "unauthenticated"
		}
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Kind: kind, Message: msg})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Kind: kind, Message: "internal error"})
	}
}

func (h *Handler) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Kind: common.KindValidation, Message: "invalid request body"})
	}

	h.logger.Info(ctx, "Signup request")

	profile, err := h.users.Signup(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Warn(ctx, "signup failed", "error", err.Error())
		return writeError(c, err)
	}

	h.logger.Info(ctx, "Registered", "user_id", profile.ID)
	return c.JSON(http.StatusCreated, userResponse{User: profile})
}

func (h *Handler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Kind: common.KindValidation, Message: "invalid request body"})
	}

	token, profile, err := h.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		// one warn line for every failure; the response body never says
		// whether the email exists
		h.logger.Warn(ctx, "login failed", "error", err.Error())
		return writeError(c, err)
	}

	h.logger.Info(ctx, "Logged in", "user_id", profile.ID)
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: profile})
}

func (h *Handler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID := UserIDFromContext(c)
	if userID == "" {
		return writeError(c, common.ErrInvalidToken)
	}

	profile, err := h.users.GetProfile(ctx, userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, userResponse{User: profile})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
