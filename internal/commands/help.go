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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todoctl help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todoctl                                             List your tasks
  todoctl list [common flags] [--date YYYY-MM-DD]     List your tasks
  todoctl add [common flags] <title...>               Create a task
  todoctl done [common flags] <n>                     Mark task n completed
  todoctl undone [common flags] <n>                   Mark task n not completed
  todoctl rm [common flags] <n>                       Delete task n
  todoctl admin [common flags] [--search <q>] [--date YYYY-MM-DD] [--page <n>]
  todoctl register [common flags] --name <name> --email <email> --password <pw>
  todoctl login [common flags] --email <email> --password <pw>
  todoctl logout [common flags]
  todoctl whoami [common flags]
  todoctl help
  todoctl version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  TODOCTL_API_URL      Base URL of the todo service
  TODOCTL_AUTH_SCHEME  Credential header convention: raw (default) or bearer
  TODOCTL_TZ           IANA time zone for the --date filter (default: local)
`
