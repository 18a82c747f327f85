package commands

import (
	"context"
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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "todoctl add <title...>" }
func (c *AddCmd) NeedsAuth() bool   { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	if err := svc.CreateTask(ctx, title); err != nil {
		return fail(errOut, err)
	}

	return refetchAndRender(ctx, cfg, svc, out, errOut)
}

// refetchAndRender does the write-follow-up every mutation shares: a full
// re-fetch of the collection before the view is recomputed. Local state is
// never patched optimistically; the remote store is the source of truth.
func refetchAndRender(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return fail(errOut, err)
	}
	if !cfg.Quiet {
		renderPersonal(cfg, tasks, "", out)
	}
	return exitcode.Success
}
