package iface

import (
	"context"
	"time"
)

// Task represents a Backlog task synced into Team Insight
type Task struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	ProjectID string    `json:"project_id"`
	Assignee  string    `json:"assignee,omitempty"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority,omitempty"`
	DueDate   string    `json:"due_date,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskFilter narrows a task listing. Zero values mean "no filter".
type TaskFilter struct {
	ProjectID string
	Assignee  string
	Status    string
}

// TaskService defines the interface for task operations
type TaskService interface {
	// ListTasks returns tasks matching the filter
	ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error)
}
