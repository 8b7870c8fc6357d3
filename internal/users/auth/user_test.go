// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe_CredentialColumnsNotFilterable(t *testing.T) {
	desc := Describe()

	// Filterable fields must never expose credential columns: a crafted
	// listing query could otherwise probe password digests.
	for _, name := range []string{"password", "email", "role"} {
		_, ok := desc.Fields[name]
		assert.False(t, ok, "%q must not be filterable", name)
	}

	_, ok := desc.Fields["login"]
	assert.True(t, ok)
	_, ok = desc.Fields["id"]
	assert.True(t, ok)
}

func TestDescribe_CredentialColumnsWritable(t *testing.T) {
	desc := Describe()

	// Registration and profile updates still need write access.
	for _, name := range []string{"email", "login", "password", "avatar", "role"} {
		_, ok := desc.Writable[name]
		assert.True(t, ok, "%q must be writable", name)
	}
}
