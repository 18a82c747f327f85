package todoapi

import (
	"time"

	"todoctl/internal/service"
)

// Wire shapes of the remote store. The backend is Mongo-flavored: ids come
// as "_id" and timestamps as RFC 3339 strings.

type wireUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type wireTask struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      *wireUser `json:"user"`
}

// wireLogin tolerates both observed login response shapes:
// {token, name, role?} and {token, user: {name}, role?}.
type wireLogin struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	User  *struct {
		Name string `json:"name"`
	} `json:"user"`
}

func (w wireTask) toTask() service.Task {
	t := service.Task{
		ID:        w.ID,
		Title:     w.Title,
		Completed: w.Completed,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	if w.User != nil {
		t.User = &service.User{ID: w.User.ID, Name: w.User.Name, Email: w.User.Email}
	}
	return t
}

func toTasks(ws []wireTask) []service.Task {
	out := make([]service.Task, len(ws))
	for i, w := range ws {
		out[i] = w.toTask()
	}
	return out
}
