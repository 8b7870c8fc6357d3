// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTurnstileVerify_Success(t *testing.T) {
	var gotSecret, gotResponse string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.NoError(t, request.ParseForm())
		gotSecret = request.PostFormValue("secret")
		gotResponse = request.PostFormValue("response")
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	verifier := NewTurnstileVerifier("top-secret", server.URL, discardLogger())

	ok := verifier.Verify(context.Background(), "challenge-token")
	assert.True(t, ok)
	assert.Equal(t, "top-secret", gotSecret)
	assert.Equal(t, "challenge-token", gotResponse)
}

func TestTurnstileVerify_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer server.Close()

	verifier := NewTurnstileVerifier("top-secret", server.URL, discardLogger())
	assert.False(t, verifier.Verify(context.Background(), "stale-token"))
}

func TestTurnstileVerify_FailsClosed(t *testing.T) {
	t.Run("unreachable endpoint", func(t *testing.T) {
		verifier := NewTurnstileVerifier("top-secret", "http://127.0.0.1:0", discardLogger())
		assert.False(t, verifier.Verify(context.Background(), "token"))
	})

	t.Run("undecodable reply", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Write([]byte("<html>upstream error</html>"))
		}))
		defer server.Close()

		verifier := NewTurnstileVerifier("top-secret", server.URL, discardLogger())
		assert.False(t, verifier.Verify(context.Background(), "token"))
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Write([]byte(`{"success": true}`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		verifier := NewTurnstileVerifier("top-secret", server.URL, discardLogger())
		assert.False(t, verifier.Verify(ctx, "token"))
	})
}
