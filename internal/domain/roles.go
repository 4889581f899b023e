package domain

import (
	"fmt"
	"strings"
)

// Role is the tag a user picks at login. It carries no credentials.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleDevelopment Role = "development"
	RoleWorker      Role = "worker"
)

// ParseRole returns the role for a tag (case-insensitive).
func ParseRole(tag string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(tag))); r {
	case RoleAdmin, RoleDevelopment, RoleWorker:
		return r, true
	}
	return "", false
}

// RequireAdmin is the authorization check for admin-only operations.
func RequireAdmin(role Role, action string) error {
	if role != RoleAdmin {
		return fmt.Errorf("%s requires admin, got %q: %w", action, role, ErrPermissionDenied)
	}
	return nil
}
