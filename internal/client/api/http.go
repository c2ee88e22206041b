package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetTokenSource wires in the session manager after construction; the
// manager needs the client for login, hence the two-step setup.
func (c *HTTPClient) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	User *Profile `json:"user"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  *Profile `json:"user"`
}

type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (c *HTTPClient) Signup(ctx context.Context, email string, password string) (*Profile, error) {
	var resp userResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) Login(ctx context.Context, email string, password string) (string, *Profile, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*Profile, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

func (c *HTTPClient) do(ctx context.Context, method string, path string, body any, out any) error {

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// attach the current session token, if any
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+" "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed response: %v", common.ErrUnavailable, err)
	}
	return nil
}

// decodeAPIError turns a structured error body into its sentinel error,
// preserving the server message where it adds detail. Responses without a
// recognizable body fall back to the status code.
func decodeAPIError(resp *http.Response) error {
	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil || er.Kind == "" {
		if resp.StatusCode == http.StatusUnauthorized {
			return common.ErrUnauthorized
		}
		return common.ErrInternal
	}

	kindErr := common.ErrorByKind(er.Kind)
	if er.Message != "" && er.Message != kindErr.Error() {
		return fmt.Errorf("%w: %s", kindErr, er.Message)
	}
	return kindErr
}
