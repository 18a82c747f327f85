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
	"todoctl/internal/view"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command: the personal task view.
// Runs for bare `todoctl` as well.
type ListCmd struct {
	date string
}

// SetDate sets the calendar-day filter (for testing).
func (c *ListCmd) SetDate(d string) {
	c.date = d
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List your tasks" }
func (c *ListCmd) Usage() string     { return "todoctl list [--date YYYY-MM-DD]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.date, "date", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if c.date != "" && !validDay(c.date) {
		fmt.Fprintf(errOut, "error: invalid date: %s (want YYYY-MM-DD)\n", c.date)
		return exitcode.UserError
	}

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return fail(errOut, err)
	}

	renderPersonal(cfg, tasks, c.date, out)
	return exitcode.Success
}

// renderPersonal recomputes and prints the personal view. Shared by every
// command that ends in a re-render (list, add, done, undone, rm).
func renderPersonal(cfg *config.Config, tasks []service.Task, day string, out io.Writer) {
	ordered := personalCache.Personal(tasks, day, cfg.Location())

	if len(ordered) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return
	}
	for i, t := range ordered {
		output.FormatTask(out, i+1, t, cfg.Location())
	}
}

// personalCache memoizes the personal pipeline across renders within one
// invocation.
var personalCache view.Cache
