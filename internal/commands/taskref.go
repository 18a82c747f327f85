package commands

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode"

	"todoctl/internal/service"
	"todoctl/internal/view"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskNum parses a 1-based task number from args. The number refers
// to the position in the personal view ordering, i.e. the number `list`
// printed next to the task.
func ParseTaskNum(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}
	ref := args[0]
	if !isAllDigits(ref) {
		return 0, fmt.Errorf("invalid task reference: %s", ref)
	}
	num, err := strconv.Atoi(ref)
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid task reference: %s", ref)
	}
	return num, nil
}

// ResolveTask returns the num-th task of the ordered personal view.
func ResolveTask(ordered []service.Task, num int) (service.Task, error) {
	if num < 1 || num > len(ordered) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return ordered[num-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// validDay reports whether s is a well-formed calendar-day selector.
func validDay(s string) bool {
	_, err := time.Parse(view.DayFormat, s)
	return err == nil
}
