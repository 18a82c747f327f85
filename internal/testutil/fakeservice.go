// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"todoctl/internal/service"
)

// FakeService is an in-memory implementation of service.Service for
// testing. It records the order of calls so tests can assert sequencing
// (every write is followed by a re-fetch).
type FakeService struct {
	mu       sync.RWMutex
	own      []service.Task            // the signed-in user's tasks
	all      []service.Task            // every user's tasks, admin view
	accounts map[string]fakeAccount    // email -> account
	calls    []string

	// Error injection for testing
	RegisterErr     error
	LoginErr        error
	ListTasksErr    error
	CreateTaskErr   error
	SetCompletedErr error
	DeleteTaskErr   error
	ListAllTasksErr error
}

type fakeAccount struct {
	name     string
	password string
	token    string
	role     string
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{accounts: make(map[string]fakeAccount)}
}

// AddAccount registers a login-able account returning the given token.
func (f *FakeService) AddAccount(email, password, name, token, role string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[email] = fakeAccount{name: name, password: password, token: token, role: role}
}

// AddTask adds a task to the signed-in user's collection.
func (f *FakeService) AddTask(id, title string, completed bool, createdAt time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.own = append(f.own, service.Task{
		ID:        id,
		Title:     title,
		Completed: completed,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})
}

// AddUserTask adds a task with an owner reference to the aggregate
// collection. Pass a nil user to simulate a missing owner.
func (f *FakeService) AddUserTask(user *service.User, id, title string, completed bool, createdAt time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.all = append(f.all, service.Task{
		ID:        id,
		Title:     title,
		Completed: completed,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		User:      user,
	})
}

// Calls returns the method invocation order so far.
func (f *FakeService) Calls() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FakeService) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

// Register implements service.Service.
func (f *FakeService) Register(ctx context.Context, name, email, password string) error {
	f.record("Register")
	if f.RegisterErr != nil {
		return f.RegisterErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[email] = fakeAccount{name: name, password: password, token: "tok-" + uuid.NewString()}
	return nil
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, email, password string) (service.Session, error) {
	f.record("Login")
	if f.LoginErr != nil {
		return service.Session{}, f.LoginErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	acct, ok := f.accounts[email]
	if !ok || acct.password != password {
		return service.Session{}, service.ErrUnauthorized
	}
	return service.Session{Token: acct.token, Name: acct.name, Role: acct.role}, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.record("ListTasks")
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.own))
	copy(out, f.own)
	return out, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, title string) error {
	f.record("CreateTask")
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	f.own = append(f.own, service.Task{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return nil
}

// SetCompleted implements service.Service.
func (f *FakeService) SetCompleted(ctx context.Context, taskID string, completed bool) error {
	f.record("SetCompleted")
	if f.SetCompletedErr != nil {
		return f.SetCompletedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.own {
		if f.own[i].ID == taskID {
			f.own[i].Completed = completed
			f.own[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return service.ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, taskID string) error {
	f.record("DeleteTask")
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.own {
		if f.own[i].ID == taskID {
			f.own = append(f.own[:i], f.own[i+1:]...)
			return nil
		}
	}
	return service.ErrNotFound
}

// ListAllTasks implements service.Service.
func (f *FakeService) ListAllTasks(ctx context.Context) ([]service.Task, error) {
	f.record("ListAllTasks")
	if f.ListAllTasksErr != nil {
		return nil, f.ListAllTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.all))
	copy(out, f.all)
	return out, nil
}
