package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jay-rajapure/Blue-Collar-Worker-Service/models"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/session"
)

// SignIn authenticates against the backend and populates the session on
// success. This is the one place the session gets written.
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.SignInResponse, error) {
	payload := models.SignInRequest{Email: email, Password: password}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}

	var result models.SignInResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signIn", bytes.NewReader(data), "application/json", false, &result); err != nil {
		return nil, err
	}
	if result.JWT == "" {
		return nil, &BackendError{Status: http.StatusOK, Message: "Login failed. Please check your credentials."}
	}

	sess := &session.Session{
		AuthToken: result.JWT,
		Role:      result.Role,
		UserID:    result.UserID,
		UserName:  result.UserName,
		UserEmail: result.UserEmail,
	}
	if err := c.session.Set(sess); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &result, nil
}

// SignOut clears the persisted session. Purely local: the backend keeps no
// session state for this client beyond the token's own expiry.
func (c *Client) SignOut() error {
	return c.session.Clear()
}
