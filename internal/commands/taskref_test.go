package commands_test

import (
	"testing"
	"time"

	"todoctl/internal/commands"
	"todoctl/internal/service"
)

func TestParseTaskNum(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{"simple", []string{"3"}, 3, false},
		{"first", []string{"1"}, 1, false},
		{"no args", nil, 0, true},
		{"zero", []string{"0"}, 0, true},
		{"negative", []string{"-1"}, 0, true},
		{"not a number", []string{"abc"}, 0, true},
		{"trailing junk", []string{"3x"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := commands.ParseTaskNum(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestResolveTask(t *testing.T) {
	ordered := []service.Task{
		{ID: "a", Title: "A", CreatedAt: time.Now()},
		{ID: "b", Title: "B", CreatedAt: time.Now()},
	}

	task, err := commands.ResolveTask(ordered, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "b" {
		t.Errorf("expected task b, got %q", task.ID)
	}

	if _, err := commands.ResolveTask(ordered, 3); err == nil {
		t.Error("expected out of range error")
	}
	if _, err := commands.ResolveTask(nil, 1); err == nil {
		t.Error("expected out of range error for empty view")
	}
}
