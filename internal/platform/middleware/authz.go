// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/phamduylong/anizora/internal/platform/apperr"
	"github.com/phamduylong/anizora/internal/platform/constants"
	"github.com/phamduylong/anizora/internal/platform/ctxutil"
	"github.com/phamduylong/anizora/internal/platform/respond"
	"github.com/phamduylong/anizora/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify session tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the [sec.TokenService]
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the session credential from the request.
//
// # Flow
//  1. Look for the session cookie; fall back to 'Authorization: Bearer <token>'.
//  2. If no credential is present, the request proceeds as anonymous.
//  3. If a credential is present, it MUST verify. Any decode error, signature
//     mismatch, or expiry aborts with 401 — a broken token never degrades
//     into an anonymous request.
//  4. Inject [*sec.AuthClaims] into the request context for downstream use.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Credential Extraction ──────────────────────────────────────
			tokenStr := ""
			if cookie, err := request.Cookie(constants.SessionCookieName); err == nil {
				tokenStr = cookie.Value
			} else if authHeader := request.Header.Get("Authorization"); authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
					respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
					return
				}
				tokenStr = parts[1]
			}

			// ── 2. Anonymous Access ───────────────────────────────────────────
			if tokenStr == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Token Verification (fails closed) ──────────────────────────
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Could not validate credentials"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
