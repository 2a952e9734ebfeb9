// Package iface defines service interfaces for the Insight CLI.
// These interfaces enable dependency injection and mocking for tests.
package iface

import (
	"context"
)

// Identity represents the currently authenticated user
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Login performs OAuth authentication and saves credentials
	Login(ctx context.Context) error

	// Logout clears stored credentials
	Logout(ctx context.Context) error

	// IsLoggedIn checks if the user is currently authenticated
	IsLoggedIn() bool

	// WhoAmI returns the identity of the current session. Returns
	// (nil, nil) when no session exists and the probe ran from a public
	// context.
	WhoAmI(ctx context.Context) (*Identity, error)
}
