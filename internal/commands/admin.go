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
	Register(&AdminCmd{})
}

// AdminCmd implements the privileged all-users view: every task across
// every account, filtered, grouped per user, and paginated. The server
// decides who is privileged; a plain account gets its authorization
// failure surfaced.
type AdminCmd struct {
	search string
	date   string
	page   int
}

// SetFilters sets search/date/page (for testing).
func (c *AdminCmd) SetFilters(search, date string, page int) {
	c.search = search
	c.date = date
	c.page = page
}

func (c *AdminCmd) Name() string      { return "admin" }
func (c *AdminCmd) Aliases() []string { return []string{"all"} }
func (c *AdminCmd) Synopsis() string  { return "List every user's tasks (admin)" }
func (c *AdminCmd) Usage() string {
	return "todoctl admin [--search <q>] [--date YYYY-MM-DD] [--page <n>]"
}
func (c *AdminCmd) NeedsAuth() bool { return true }

func (c *AdminCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.search, "search", "", "")
	fs.StringVar(&c.date, "date", "", "")
	fs.IntVar(&c.page, "page", 1, "")
}

func (c *AdminCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if c.date != "" && !validDay(c.date) {
		fmt.Fprintf(errOut, "error: invalid date: %s (want YYYY-MM-DD)\n", c.date)
		return exitcode.UserError
	}
	if c.page < 1 {
		fmt.Fprintf(errOut, "error: invalid page number: %d\n", c.page)
		return exitcode.UserError
	}

	tasks, err := svc.ListAllTasks(ctx)
	if err != nil {
		return fail(errOut, err)
	}

	// Filter changes land on page 1; the requested page is then clamped
	// against the filtered group count.
	state := view.NewAdminState()
	state.SetQuery(c.search)
	state.SetDay(c.date)

	var cache view.Cache
	probe := cache.Aggregate(tasks, state.Query(), state.Day(), cfg.Location(), state.Page())
	state.SetPage(c.page, probe.TotalPages)

	page := probe
	if state.Page() != 1 {
		page = cache.Aggregate(tasks, state.Query(), state.Day(), cfg.Location(), state.Page())
	}

	if len(page.Groups) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no users or todos found")
		}
		return exitcode.Success
	}

	for _, g := range page.Groups {
		output.FormatGroupHeader(out, g)
		for i, t := range g.Tasks {
			output.FormatGroupTask(out, i+1, t, cfg.Location())
		}
	}
	output.FormatPageFooter(out, state.Page(), page.TotalPages)
	return exitcode.Success
}
