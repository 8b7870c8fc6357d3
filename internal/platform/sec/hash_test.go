// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package sec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHash_Deterministic(t *testing.T) {
	hasher := NewPasswordHasher("service-secret")

	// The digest must be stable: login matches it by equality in SQL.
	first := hasher.Hash("correct horse battery staple")
	second := hasher.Hash("correct horse battery staple")
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestPasswordHash_DistinctInputs(t *testing.T) {
	hasher := NewPasswordHasher("service-secret")

	assert.NotEqual(t, hasher.Hash("password-one"), hasher.Hash("password-two"))
}

func TestPasswordHash_SecretKeyed(t *testing.T) {
	// The same password under a different service secret yields a
	// different digest.
	a := NewPasswordHasher("secret-a").Hash("hunter2")
	b := NewPasswordHasher("secret-b").Hash("hunter2")
	assert.NotEqual(t, a, b)
}

func TestPasswordVerify(t *testing.T) {
	hasher := NewPasswordHasher("service-secret")
	digest := hasher.Hash("hunter2")

	assert.True(t, hasher.Verify("hunter2", digest))
	assert.False(t, hasher.Verify("hunter3", digest))
	assert.False(t, hasher.Verify("hunter2", "tampered"))
}
