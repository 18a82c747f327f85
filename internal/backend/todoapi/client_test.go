package todoapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"todoctl/internal/config"
	"todoctl/internal/service"
	"todoctl/internal/session"
)

func newSession(t *testing.T, token string) *session.Store {
	t.Helper()
	s, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	if token != "" {
		if err := s.Establish(token, "Test User"); err != nil {
			t.Fatalf("establish: %v", err)
		}
	}
	return s
}

func newClient(url, scheme string, sess *session.Store) *Client {
	cfg := &config.Config{APIURL: url, AuthScheme: scheme}
	return New(cfg, sess)
}

func TestRawTokenInjection(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := newClient(srv.URL, config.AuthSchemeRaw, newSession(t, "tok-abc"))
	if _, err := c.ListTasks(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if got != "tok-abc" {
		t.Errorf("raw scheme must send the token verbatim, got %q", got)
	}
}

func TestBearerTokenInjection(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := newClient(srv.URL, config.AuthSchemeBearer, newSession(t, "tok-abc"))
	if _, err := c.ListTasks(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if got != "Bearer tok-abc" {
		t.Errorf("bearer scheme must prefix the token, got %q", got)
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	var sawHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{"token":"t","name":"n"}`))
	}))
	defer srv.Close()

	c := newClient(srv.URL, config.AuthSchemeRaw, newSession(t, ""))
	if _, err := c.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if sawHeader {
		t.Error("unauthenticated requests must not carry an Authorization header")
	}
}

func TestUnauthorizedClearsSessionOnce(t *testing.T) {
	var auth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = append(auth, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sess := newSession(t, "stale-token")
	c := newClient(srv.URL, config.AuthSchemeRaw, sess)

	_, err := c.ListTasks(context.Background())
	if !errors.Is(err, service.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if sess.Present() {
		t.Error("session must be cleared on 401")
	}

	// The stale token must never go out again.
	_, _ = c.ListTasks(context.Background())
	if len(auth) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(auth))
	}
	if auth[0] != "stale-token" {
		t.Errorf("first request should have carried the token, got %q", auth[0])
	}
	if auth[1] != "" {
		t.Errorf("second request must not carry the stale token, got %q", auth[1])
	}
}

func TestForbiddenDoesNotClearSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	sess := newSession(t, "ordinary-user")
	c := newClient(srv.URL, config.AuthSchemeRaw, sess)

	_, err := c.ListAllTasks(context.Background())
	if !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if !sess.Present() {
		t.Error("403 must not clear the session")
	}
}

func TestServerErrorIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sess := newSession(t, "tok")
	c := newClient(srv.URL, config.AuthSchemeRaw, sess)

	_, err := c.ListTasks(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, service.ErrUnauthorized) || errors.Is(err, service.ErrForbidden) || errors.Is(err, service.ErrNotFound) {
		t.Errorf("5xx must surface as a generic failure, got %v", err)
	}
	if !sess.Present() {
		t.Error("a generic failure must not touch the session")
	}
}

func TestMalformedPayloadIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	sess := newSession(t, "tok")
	c := newClient(srv.URL, config.AuthSchemeRaw, sess)

	_, err := c.ListTasks(context.Background())
	if err == nil {
		t.Fatal("expected a decode error")
	}
	if !sess.Present() {
		t.Error("a decode failure must not touch the session")
	}
}

func TestListTasksDecodesWire(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/todos" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`[
			{"_id":"t1","title":"Buy milk","completed":false,"createdAt":"2024-01-02T10:00:00Z","updatedAt":"2024-01-02T10:00:00Z"},
			{"_id":"t2","title":"Ship it","completed":true,"createdAt":"2024-01-01T09:00:00Z","updatedAt":"2024-01-03T09:00:00Z",
			 "user":{"_id":"u1","name":"Alice","email":"alice@example.com"}}
		]`))
	}))
	defer srv.Close()

	c := newClient(srv.URL, config.AuthSchemeRaw, newSession(t, "tok"))
	tasks, err := c.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != "t1" || tasks[0].Completed {
		t.Errorf("unexpected first task: %+v", tasks[0])
	}
	if tasks[1].User == nil || tasks[1].User.Email != "alice@example.com" {
		t.Errorf("owner reference not decoded: %+v", tasks[1].User)
	}
}

func TestLoginResponseShapes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantName string
	}{
		{"flat name", `{"token":"tok","name":"Alice"}`, "Alice"},
		{"nested user", `{"token":"tok","user":{"name":"Bob"}}`, "Bob"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/auth/login" {
					t.Errorf("unexpected path: %s", r.URL.Path)
				}
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newClient(srv.URL, config.AuthSchemeRaw, newSession(t, ""))
			res, err := c.Login(context.Background(), "a@b.c", "pw")
			if err != nil {
				t.Fatalf("login: %v", err)
			}
			if res.Token != "tok" || res.Name != tt.wantName {
				t.Errorf("got %q/%q, want tok/%s", res.Token, res.Name, tt.wantName)
			}
		})
	}
}

func TestMutationVerbsAndPaths(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newClient(srv.URL, config.AuthSchemeRaw, newSession(t, "tok"))
	ctx := context.Background()

	if err := c.CreateTask(ctx, "new task"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := c.SetCompleted(ctx, "t1", true); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := c.DeleteTask(ctx, "t1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	want := []call{
		{http.MethodPost, "/todos"},
		{http.MethodPut, "/todos/t1"},
		{http.MethodDelete, "/todos/t1"},
	}
	if len(calls) != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), len(calls))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d: got %v, want %v", i, calls[i], want[i])
		}
	}
}
