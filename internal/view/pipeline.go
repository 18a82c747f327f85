// Package view computes the derived task views: filtered, sorted, grouped
// and paginated projections of a raw task collection. Everything here is
// pure; recomputing never touches the network or mutates its inputs.
package view

import (
	"sort"
	"strings"
	"time"

	"todoctl/internal/service"
)

// DayFormat is the calendar-day selector format (local calendar day).
const DayFormat = "2006-01-02"

// PageSize is the fixed number of user groups per aggregate page.
const PageSize = 10

// Group is all tasks owned by one user, ordered date-descending.
type Group struct {
	User  service.User
	Tasks []service.Task
}

// Page is one page of the aggregate view.
type Page struct {
	Groups []Group
	// TotalPages is ceil(groupCount / PageSize); 0 when nothing matched.
	TotalPages int
}

// unknownUser groups tasks whose owner reference is missing.
var unknownUser = service.User{ID: "unknown", Name: "Unknown", Email: "Unknown"}

// Personal computes the personal view: tasks matching the optional
// calendar-day selector (in loc), incomplete before completed, each block
// newest-first. Equal timestamps keep their input order.
func Personal(tasks []service.Task, day string, loc *time.Location) []service.Task {
	out := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if day != "" && t.CreatedAt.In(loc).Format(DayFormat) != day {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Aggregate computes one page of the all-users view: tasks matching the
// free-text query (owner name/email, case-insensitive substring) and the
// optional day selector, sorted date-descending, grouped by owner in order
// of each owner's most recent task, then sliced into pages of PageSize.
//
// The page number is not clamped here; callers clamp before asking (see
// AdminState). An out-of-range page yields an empty Groups slice with
// TotalPages still filled in.
func Aggregate(tasks []service.Task, query, day string, loc *time.Location, page int) Page {
	q := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if q != "" && !ownerMatches(t.User, q) {
			continue
		}
		if day != "" && t.CreatedAt.In(loc).Format(DayFormat) != day {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	// Group by owner id; group order follows the first (most recent,
	// post-sort) task seen per owner.
	index := make(map[string]int)
	var groups []Group
	for _, t := range filtered {
		owner := unknownUser
		if t.User != nil {
			owner = *t.User
		}
		i, ok := index[owner.ID]
		if !ok {
			i = len(groups)
			index[owner.ID] = i
			groups = append(groups, Group{User: owner})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}

	totalPages := (len(groups) + PageSize - 1) / PageSize

	start := (page - 1) * PageSize
	if page < 1 || start >= len(groups) {
		return Page{TotalPages: totalPages}
	}
	end := start + PageSize
	if end > len(groups) {
		end = len(groups)
	}
	return Page{Groups: groups[start:end], TotalPages: totalPages}
}

// ownerMatches reports whether the query matches the owner's name or email.
// A missing owner or field is treated as empty, never a match failure.
func ownerMatches(u *service.User, q string) bool {
	var name, email string
	if u != nil {
		name = strings.ToLower(u.Name)
		email = strings.ToLower(u.Email)
	}
	return strings.Contains(name, q) || strings.Contains(email, q)
}
