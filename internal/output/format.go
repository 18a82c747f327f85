// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"todoctl/internal/service"
	"todoctl/internal/view"
)

const (
	// ListSeparator is the separator line for group sections.
	ListSeparator = "------------"

	// TimeFormat is how task timestamps are displayed.
	TimeFormat = "02 Jan 2006 15:04"
)

// FormatTask formats one personal-view task line.
// Format: "{N:>4}  {BOX} {TITLE}  {WHEN}\n"
func FormatTask(w io.Writer, num int, t service.Task, loc *time.Location) {
	fmt.Fprintf(w, "%4d  %s %s  %s\n",
		num,
		statusBox(t.Completed),
		normalizeTitle(t.Title),
		mutedStyle.Render(t.CreatedAt.In(loc).Format(TimeFormat)),
	)
}

// FormatGroupHeader formats an aggregate-view group section header.
func FormatGroupHeader(w io.Writer, g view.Group) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintf(w, "%s <%s>  (%d todos)\n",
		headerStyle.Render(g.User.Name), g.User.Email, len(g.Tasks))
	fmt.Fprintln(w, ListSeparator)
}

// FormatGroupTask formats a task line inside a group section.
// Format: "    {N:>4}  {BOX} {TITLE}  {WHEN}\n"
func FormatGroupTask(w io.Writer, num int, t service.Task, loc *time.Location) {
	fmt.Fprintf(w, "    %4d  %s %s  %s\n",
		num,
		statusBox(t.Completed),
		normalizeTitle(t.Title),
		mutedStyle.Render(t.CreatedAt.In(loc).Format(TimeFormat)),
	)
}

// FormatPageFooter prints the aggregate view's pagination line.
func FormatPageFooter(w io.Writer, page, totalPages int) {
	fmt.Fprintf(w, "page %d of %d\n", page, totalPages)
}

func statusBox(completed bool) string {
	if completed {
		return doneStyle.Render("[x]")
	}
	return pendingStyle.Render("[ ]")
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
