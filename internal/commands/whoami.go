package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoctl/internal/config"
	"todoctl/internal/exitcode"
	"todoctl/internal/output"
	"todoctl/internal/service"
	"todoctl/internal/session"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd prints who is signed in. Role and expiry come from peeking at
// the token's JWT claims when it has any; an opaque token just shows the
// name.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Show the signed-in user" }
func (c *WhoamiCmd) Usage() string     { return "todoctl whoami" }
func (c *WhoamiCmd) NeedsAuth() bool   { return true }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	name := sess.Name()
	if name == "" {
		// Token-only sessions are tolerated for display.
		name = "(unknown)"
	}
	fmt.Fprintln(out, name)

	if claims, ok := sess.Claims(); ok {
		if claims.Role != "" {
			fmt.Fprintf(out, "role: %s\n", claims.Role)
		}
		if !claims.ExpiresAt.IsZero() {
			fmt.Fprintf(out, "expires: %s\n", claims.ExpiresAt.In(cfg.Location()).Format(output.TimeFormat))
		}
	}
	return exitcode.Success
}
