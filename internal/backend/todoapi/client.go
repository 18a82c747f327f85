// Package todoapi implements service.Service against the remote todo HTTP
// API. It is the single place where the session credential is attached to
// outbound requests and the single place where responses are classified;
// commands never look at status codes.
package todoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"todoctl/internal/config"
	"todoctl/internal/service"
	"todoctl/internal/session"
)

// APITimeout is the timeout for API calls.
const APITimeout = 5 * time.Second

// Client implements service.Service over the todo HTTP API.
type Client struct {
	base   string
	scheme string
	sess   *session.Store
	http   *http.Client
	log    *slog.Logger
}

// New creates a client for the API at cfg.APIURL. The session store is
// read for the credential on every request and cleared when the server
// rejects it.
func New(cfg *config.Config, sess *session.Store) *Client {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cfg.Debug {
		log = slog.Default()
	}
	return &Client{
		base:   strings.TrimRight(cfg.APIURL, "/"),
		scheme: cfg.AuthScheme,
		sess:   sess,
		http:   &http.Client{},
		log:    log,
	}
}

// do sends one API request: marshals body (if any), attaches the session
// token, dispatches, classifies the response, and decodes into out (if
// non-nil) on success.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Credential injection. The wire convention varies between
	// deployments (raw token vs Bearer prefix); cfg.AuthScheme is the
	// single switch.
	if token := c.sess.Token(); token != "" {
		if c.scheme == config.AuthSchemeBearer {
			req.Header.Set("Authorization", "Bearer "+token)
		} else {
			req.Header.Set("Authorization", token)
		}
	}

	reqID := uuid.NewString()
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("api_request_failed", "id", reqID, "method", method, "path", path, "error", err)
		return fmt.Errorf("request failed: %w", maybeTimeout(err))
	}
	defer resp.Body.Close()

	c.log.Debug("api_request",
		"id", reqID,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Sole detection point for a stale credential: drop the
		// session so no further call goes out with it.
		if err := c.sess.Clear(); err != nil {
			c.log.Debug("session_clear_failed", "error", err)
		}
		return service.ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return service.ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		return service.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// maybeTimeout rewrites a deadline error into something a user can act on.
func maybeTimeout(err error) error {
	if strings.Contains(err.Error(), "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}
	return err
}
