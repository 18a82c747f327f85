package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todoctl/internal/config"
	"todoctl/internal/exitcode"
	"todoctl/internal/service"
	"todoctl/internal/session"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd exchanges email/password for a session token and persists it
// together with the display name.
type LoginCmd struct {
	email    string
	password string
}

// SetInput sets the credentials (for testing).
func (c *LoginCmd) SetInput(email, password string) {
	c.email = email
	c.password = password
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate with the todo service" }
func (c *LoginCmd) Usage() string     { return "todoctl login --email <email> --password <password>" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	email := strings.TrimSpace(c.email)
	if email == "" || c.password == "" {
		fmt.Fprintln(errOut, "error: email and password required")
		return exitcode.UserError
	}

	res, err := svc.Login(ctx, email, c.password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			fmt.Fprintln(errOut, "error: login failed: invalid credentials")
			return exitcode.AuthError
		}
		return fail(errOut, err)
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}
	if err := sess.Establish(res.Token, res.Name); err != nil {
		fmt.Fprintf(errOut, "error: failed to save session: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		if res.Name != "" {
			fmt.Fprintf(out, "welcome %s\n", res.Name)
		} else {
			fmt.Fprintln(out, "ok")
		}
	}
	return exitcode.Success
}
