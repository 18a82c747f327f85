package todoapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"todoctl/internal/service"
)

// Register creates a new account.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/register", body, nil)
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (service.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var w wireLogin
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &w); err != nil {
		return service.Session{}, err
	}
	if w.Token == "" {
		return service.Session{}, fmt.Errorf("login response carried no token")
	}

	name := w.Name
	if name == "" && w.User != nil {
		name = w.User.Name
	}
	return service.Session{Token: w.Token, Name: name, Role: w.Role}, nil
}

// ListTasks returns the caller's own tasks.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var ws []wireTask
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &ws); err != nil {
		return nil, err
	}
	return toTasks(ws), nil
}

// CreateTask creates a task owned by the caller.
func (c *Client) CreateTask(ctx context.Context, title string) error {
	return c.do(ctx, http.MethodPost, "/todos", map[string]string{"title": title}, nil)
}

// SetCompleted updates a task's completion flag.
func (c *Client) SetCompleted(ctx context.Context, taskID string, completed bool) error {
	body := map[string]bool{"completed": completed}
	return c.do(ctx, http.MethodPut, "/todos/"+url.PathEscape(taskID), body, nil)
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.do(ctx, http.MethodDelete, "/todos/"+url.PathEscape(taskID), nil, nil)
}

// ListAllTasks returns every user's tasks with owner references.
func (c *Client) ListAllTasks(ctx context.Context) ([]service.Task, error) {
	var ws []wireTask
	if err := c.do(ctx, http.MethodGet, "/todos/admin/all", nil, &ws); err != nil {
		return nil, err
	}
	return toTasks(ws), nil
}
