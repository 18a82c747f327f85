package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoctl/internal/config"
	"todoctl/internal/exitcode"
	"todoctl/internal/service"
	"todoctl/internal/session"
)

func init() {
	Register(&DoneCmd{})
	Register(&UndoneCmd{})
}

// DoneCmd marks a task completed.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "todoctl done <n>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	return runToggle(ctx, cfg, svc, args, true, out, errOut)
}

// UndoneCmd marks a task not completed again.
type UndoneCmd struct{}

func (c *UndoneCmd) Name() string      { return "undone" }
func (c *UndoneCmd) Aliases() []string { return []string{"undo"} }
func (c *UndoneCmd) Synopsis() string  { return "Mark a task not completed" }
func (c *UndoneCmd) Usage() string     { return "todoctl undone <n>" }
func (c *UndoneCmd) NeedsAuth() bool   { return true }

func (c *UndoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoneCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	return runToggle(ctx, cfg, svc, args, false, out, errOut)
}

// runToggle is the shared implementation for done and undone. The task
// number refers to the current personal view ordering, so the number the
// user saw in `list` is the number that acts here.
func runToggle(ctx context.Context, cfg *config.Config, svc service.Service, args []string, completed bool, out, errOut io.Writer) int {
	num, err := ParseTaskNum(args)
	if err != nil {
		if err == ErrTaskRefRequired {
			fmt.Fprintln(errOut, "error: task reference required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return fail(errOut, err)
	}
	ordered := personalCache.Personal(tasks, "", cfg.Location())

	task, err := ResolveTask(ordered, num)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if err := svc.SetCompleted(ctx, task.ID, completed); err != nil {
		return fail(errOut, err)
	}

	return refetchAndRender(ctx, cfg, svc, out, errOut)
}
