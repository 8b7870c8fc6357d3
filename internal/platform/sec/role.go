// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level stored on an account record.
type UserRole string

const (
	// Unrestricted catalogue management access
	RoleAdmin UserRole = "admin"

	// Default role for standard registered users
	RoleUser UserRole = "user"
)

// IsValid reports whether r is a recognised [UserRole] value.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}
