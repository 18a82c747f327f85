// Package service defines the backend-agnostic interface for todo operations.
package service

import "context"

// Service defines the interface for remote todo store operations.
// All HTTP calls go through this interface; commands never build
// requests themselves.
type Service interface {
	// Register creates a new account.
	Register(ctx context.Context, name, email, password string) error

	// Login exchanges credentials for a session token.
	Login(ctx context.Context, email, password string) (Session, error)

	// ListTasks returns the caller's own tasks, server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task owned by the caller.
	CreateTask(ctx context.Context, title string) error

	// SetCompleted updates a task's completion flag.
	SetCompleted(ctx context.Context, taskID string, completed bool) error

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, taskID string) error

	// ListAllTasks returns every user's tasks with owner references.
	// Requires the privileged role; others get ErrForbidden.
	ListAllTasks(ctx context.Context) ([]Task, error)
}
