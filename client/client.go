package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jay-rajapure/Blue-Collar-Worker-Service/session"
)

// Client is the gateway to the backend API. It attaches the bearer token
// from the session to authenticated calls and normalizes error responses
// into the typed taxonomy in errors.go.
type Client struct {
	baseURL string
	http    *http.Client
	session session.Context
}

func New(baseURL string, sess session.Context) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		session: sess,
	}
}

func (c *Client) token() (string, error) {
	sess, err := c.session.Get()
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	if sess == nil || sess.AuthToken == "" {
		return "", &AuthError{Message: "Please login to continue"}
	}
	// A token that already reads as expired gets the 401 treatment without
	// the round trip.
	if sess.Expired() {
		if cerr := c.session.Clear(); cerr != nil {
			log.Printf("failed to clear expired session: %v", cerr)
		}
		return "", &AuthError{Message: "Session expired. Please login again."}
	}
	return sess.AuthToken, nil
}

// do issues one request. A 401 is the only response treated as fatal to the
// session: it clears the stored session before returning an AuthError.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, authed bool, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		token, err := c.token()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if cerr := c.session.Clear(); cerr != nil {
			log.Printf("failed to clear session after 401: %v", cerr)
		}
		return &AuthError{Message: "Session expired. Please login again."}
	}
	if resp.StatusCode >= 400 {
		return &BackendError{Status: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// decodeErrorMessage pulls the backend's message out of an error body. The
// backend is inconsistent about the key ("message" vs "error").
func decodeErrorMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return "API request failed"
}

func (c *Client) getJSON(ctx context.Context, path string, authed bool, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, "", authed, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(data), "application/json", true, out)
}

func (c *Client) put(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, "", true, out)
}

func (c *Client) putForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	body := strings.NewReader(form.Encode())
	return c.do(ctx, http.MethodPut, path, body, "application/x-www-form-urlencoded", true, out)
}
