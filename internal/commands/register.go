package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/mail"
	"strings"

	"todoctl/internal/config"
	"todoctl/internal/exitcode"
	"todoctl/internal/service"
	"todoctl/internal/session"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd creates a new account. Input is validated locally before
// anything goes over the wire; a rejected input mutates no state.
type RegisterCmd struct {
	name     string
	email    string
	password string
}

// SetInput sets the registration fields (for testing).
func (c *RegisterCmd) SetInput(name, email, password string) {
	c.name = name
	c.email = email
	c.password = password
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return []string{"signup"} }
func (c *RegisterCmd) Synopsis() string  { return "Create an account" }
func (c *RegisterCmd) Usage() string {
	return "todoctl register --name <name> --email <email> --password <password>"
}
func (c *RegisterCmd) NeedsAuth() bool { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.name, "name", "", "")
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	name := strings.TrimSpace(c.name)
	email := strings.TrimSpace(c.email)

	if name == "" || email == "" || c.password == "" {
		fmt.Fprintln(errOut, "error: name, email and password required")
		return exitcode.UserError
	}
	if _, err := mail.ParseAddress(email); err != nil {
		fmt.Fprintf(errOut, "error: invalid email: %s\n", email)
		return exitcode.UserError
	}

	if err := svc.Register(ctx, name, email, c.password); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "registered (run: todoctl login)")
	}
	return exitcode.Success
}
