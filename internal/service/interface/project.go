package iface

import (
	"context"
	"time"
)

// TaskCounts holds per-status task totals for a project
type TaskCounts struct {
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
}

// Project represents a Backlog project synced into Team Insight
type Project struct {
	ID          string     `json:"id"`
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	TaskCounts  TaskCounts `json:"task_counts"`
	SyncedAt    time.Time  `json:"synced_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ProjectService defines the interface for project operations
type ProjectService interface {
	// ListProjects returns all synced projects visible to the user
	ListProjects(ctx context.Context) ([]Project, error)

	// GetProject returns a project by ID
	GetProject(ctx context.Context, id string) (*Project, error)
}
