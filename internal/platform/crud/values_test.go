// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package crud_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phamduylong/anizora/internal/platform/crud"
)

/*
TestValues_SetIf checks the partial-update helper: only fields marked present
end up in the write set.
*/
func TestValues_SetIf(t *testing.T) {
	name := "Naruto"

	vals := new(crud.Values).
		SetIf(true, "name", name).
		SetIf(false, "year", 2002).
		SetIf(true, "status", "finished")

	assert.Equal(t, 2, vals.Len())
}

/*
TestValues_Empty verifies a fresh Values reports zero fields, the signal the
repository uses to turn an empty PATCH into a plain read.
*/
func TestValues_Empty(t *testing.T) {
	vals := &crud.Values{}
	assert.Equal(t, 0, vals.Len())
}
