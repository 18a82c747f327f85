package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"todoctl/internal/commands"
	"todoctl/internal/exitcode"
	"todoctl/internal/session"
	"todoctl/internal/testutil"
)

// runWithSession runs a command against an explicit session store, for the
// auth commands whose whole point is what they do to that store.
func runWithSession(t *testing.T, cmd commands.Command, svc *testutil.FakeService, sess *session.Store, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	cfg := testConfig(t, quiet)
	code = cmd.Run(context.Background(), cfg, sess, svc, nil, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func emptySession(t *testing.T) *session.Store {
	t.Helper()
	cfg := testConfig(t, false)
	sess, err := session.Open(cfg.SessionPath())
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return sess
}

func TestLoginCommand_EstablishesSession(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddAccount("alice@example.com", "secret", "Alice", "tok-alice", "user")
	sess := emptySession(t)

	cmd := &commands.LoginCmd{}
	cmd.SetInput("alice@example.com", "secret")
	stdout, stderr, code := runWithSession(t, cmd, svc, sess, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "welcome Alice\n" {
		t.Errorf("expected welcome line, got %q", stdout)
	}
	if sess.Token() != "tok-alice" {
		t.Errorf("expected session token %q, got %q", "tok-alice", sess.Token())
	}
	if sess.Name() != "Alice" {
		t.Errorf("expected session name %q, got %q", "Alice", sess.Name())
	}
}

func TestLoginCommand_InvalidCredentials(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddAccount("alice@example.com", "secret", "Alice", "tok-alice", "user")
	sess := emptySession(t)

	cmd := &commands.LoginCmd{}
	cmd.SetInput("alice@example.com", "wrong")
	_, stderr, code := runWithSession(t, cmd, svc, sess, false)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if !strings.Contains(stderr, "invalid credentials") {
		t.Errorf("expected credentials error, got %q", stderr)
	}
	if sess.Present() {
		t.Error("failed login must not leave a session behind")
	}
}

func TestLoginCommand_MissingCredentials(t *testing.T) {
	svc := testutil.NewFakeService()
	sess := emptySession(t)

	cmd := &commands.LoginCmd{}
	cmd.SetInput("", "")
	_, stderr, code := runWithSession(t, cmd, svc, sess, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: email and password required\n" {
		t.Errorf("expected required error, got %q", stderr)
	}
	if len(svc.Calls()) != 0 {
		t.Errorf("missing input must not reach the backend, got %v", svc.Calls())
	}
}

func TestLoginCommand_OverwritesPreviousSession(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddAccount("bob@example.com", "pw", "Bob", "tok-bob", "user")
	sess := emptySession(t)
	if err := sess.Establish("tok-old", "Old"); err != nil {
		t.Fatalf("establish: %v", err)
	}

	cmd := &commands.LoginCmd{}
	cmd.SetInput("bob@example.com", "pw")
	_, _, code := runWithSession(t, cmd, svc, sess, true)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if sess.Token() != "tok-bob" || sess.Name() != "Bob" {
		t.Errorf("expected session replaced, got token=%q name=%q", sess.Token(), sess.Name())
	}
}

func TestLogoutCommand_ClearsSession(t *testing.T) {
	sess := emptySession(t)
	if err := sess.Establish("tok", "Alice"); err != nil {
		t.Fatalf("establish: %v", err)
	}

	cmd := &commands.LogoutCmd{}
	stdout, _, code := runWithSession(t, cmd, testutil.NewFakeService(), sess, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if sess.Present() {
		t.Error("session should be gone after logout")
	}
}

func TestLogoutCommand_WhenNotLoggedIn(t *testing.T) {
	sess := emptySession(t)

	cmd := &commands.LogoutCmd{}
	stdout, _, code := runWithSession(t, cmd, testutil.NewFakeService(), sess, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "not logged in\n" {
		t.Errorf("expected not logged in, got %q", stdout)
	}
}

func TestWhoamiCommand_OpaqueToken(t *testing.T) {
	sess := emptySession(t)
	if err := sess.Establish("opaque-token", "Alice"); err != nil {
		t.Fatalf("establish: %v", err)
	}

	cmd := &commands.WhoamiCmd{}
	stdout, _, code := runWithSession(t, cmd, testutil.NewFakeService(), sess, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "Alice\n" {
		t.Errorf("opaque token should print just the name, got %q", stdout)
	}
}

func TestWhoamiCommand_NamelessSession(t *testing.T) {
	sess := emptySession(t)
	if err := sess.Establish("opaque-token", ""); err != nil {
		t.Fatalf("establish: %v", err)
	}

	cmd := &commands.WhoamiCmd{}
	stdout, _, code := runWithSession(t, cmd, testutil.NewFakeService(), sess, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "(unknown)\n" {
		t.Errorf("expected placeholder name, got %q", stdout)
	}
}
