// Package service defines the backend-agnostic interface for todo operations.
package service

import "time"

// Task represents a single task record. IDs are assigned by the remote
// store; the client never invents them.
type Task struct {
	ID        string
	Title     string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// User is the owning user, embedded only in the aggregate view.
	// Nil for the caller's own tasks.
	User *User
}

// User is a read-only reference to a task's owner.
type User struct {
	ID    string
	Name  string
	Email string
}

// Session is what a successful login yields.
type Session struct {
	Token string
	Name  string
	Role  string // "admin" for the privileged role; may be empty
}
