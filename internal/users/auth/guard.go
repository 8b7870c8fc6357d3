// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package auth

import (
	"context"

	"github.com/phamduylong/anizora/internal/platform/apperr"
	"github.com/phamduylong/anizora/internal/platform/sec"
)

// userSource is the single lookup the guard needs, kept narrow so tests can
// stub it without a database.
type userSource interface {
	GetByID(ctx context.Context, id int) (*User, error)
}

// Guard is the access-control gate in front of every role-protected
// mutation.
//
// It resolves the caller's account on every check rather than trusting any
// role carried in the session credential: a revoked admin loses access the
// moment the record changes.
type Guard struct {
	users userSource
}

func NewGuard(users userSource) *Guard {
	return &Guard{users: users}
}

// RequireRole verifies that the caller's stored role exactly equals the
// required role string.
//
// Missing account, absent role, and role mismatch all collapse into the same
// 401, leaking nothing about which check failed. The check is side-effect
// free; a failure short-circuits the protected mutation entirely.
func (guard *Guard) RequireRole(ctx context.Context, userID int, role sec.UserRole) error {
	user, err := guard.users.GetByID(ctx, userID)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
			return apperr.Unauthorized("Could not validate credentials")
		}
		return err
	}

	if user.Role == nil {
		return apperr.Unauthorized("Could not validate credentials")
	}
	if *user.Role != string(role) {
		return apperr.Unauthorized("Could not validate credentials")
	}
	return nil
}
