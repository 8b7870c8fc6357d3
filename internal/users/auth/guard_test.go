// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamduylong/anizora/internal/platform/apperr"
	"github.com/phamduylong/anizora/internal/platform/sec"
)

type stubUserSource struct {
	users map[int]*User
	err   error
}

func (s *stubUserSource) GetByID(_ context.Context, id int) (*User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	return user, nil
}

func roleOf(role string) *string { return &role }

func TestRequireRole_Admin(t *testing.T) {
	guard := NewGuard(&stubUserSource{users: map[int]*User{
		1: {ID: 1, Login: "long", Role: roleOf("admin")},
	}})

	err := guard.RequireRole(context.Background(), 1, sec.RoleAdmin)
	assert.NoError(t, err)
}

func TestRequireRole_RegularUserRejected(t *testing.T) {
	guard := NewGuard(&stubUserSource{users: map[int]*User{
		1: {ID: 1, Login: "long", Role: roleOf("user")},
	}})

	err := guard.RequireRole(context.Background(), 1, sec.RoleAdmin)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
	assert.Equal(t, "Could not validate credentials", ae.Message)
}

func TestRequireRole_ExactMatchOnly(t *testing.T) {
	// Role comparison is strict string equality; no hierarchy, no
	// case folding.
	for _, role := range []string{"Admin", "ADMIN", "admin ", "superadmin"} {
		guard := NewGuard(&stubUserSource{users: map[int]*User{
			1: {ID: 1, Login: "long", Role: roleOf(role)},
		}})

		err := guard.RequireRole(context.Background(), 1, sec.RoleAdmin)
		assert.Error(t, err, "role %q must not pass the admin gate", role)
	}
}

func TestRequireRole_NilRole(t *testing.T) {
	guard := NewGuard(&stubUserSource{users: map[int]*User{
		1: {ID: 1, Login: "long"},
	}})

	err := guard.RequireRole(context.Background(), 1, sec.RoleAdmin)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

func TestRequireRole_MissingUser(t *testing.T) {
	guard := NewGuard(&stubUserSource{users: map[int]*User{}})

	// A deleted account presents the same 401 as a wrong role.
	err := guard.RequireRole(context.Background(), 42, sec.RoleAdmin)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
	assert.Equal(t, "Could not validate credentials", ae.Message)
}

func TestRequireRole_LookupFailurePropagates(t *testing.T) {
	boom := errors.New("connection reset")
	guard := NewGuard(&stubUserSource{err: boom})

	err := guard.RequireRole(context.Background(), 1, sec.RoleAdmin)
	assert.ErrorIs(t, err, boom)
}
