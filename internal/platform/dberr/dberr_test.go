// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package dberr

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamduylong/anizora/internal/platform/apperr"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "get_anime"))

	err := Wrap(pgx.ErrNoRows, "get_anime")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)

	err = Wrap(errors.New("connection reset"), "get_anime")
	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
}

func TestWrapExactlyOne(t *testing.T) {
	assert.NoError(t, WrapExactlyOne(nil, "account"))

	// Zero rows and multiple rows both break the one-row invariant and must
	// be distinguishable from the recoverable NOT_FOUND.
	for _, cause := range []error{pgx.ErrNoRows, pgx.ErrTooManyRows} {
		err := WrapExactlyOne(cause, "account")
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "EXACTLY_ONE_EXPECTED", ae.Code)
	}
}
