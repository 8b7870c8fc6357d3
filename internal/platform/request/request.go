// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phamduylong/anizora/internal/platform/apperr"
	"github.com/phamduylong/anizora/internal/platform/ctxutil"
	"github.com/phamduylong/anizora/internal/platform/sec"
	"github.com/phamduylong/anizora/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and parses it as an integer identifier.

Returns:
  - int: The parsed identifier
  - error: apperr.ValidationError if the parameter is not a valid integer
*/
func IntParam(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ValidationError("Invalid " + name + " parameter")
	}
	return id, nil
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the user claims.

Returns:
  - *sec.AuthClaims: The authenticated user claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {

	// Get user claims
	claims := ctxutil.GetAuthUser(request.Context())

	// If the user is not authenticated, return an error
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}

/*
RequiredUserID returns the integer user ID of the currently logged-in user.

Returns:
  - int: User identifier
  - error: apperr.Unauthorized if not authenticated or the subject is malformed
*/
func RequiredUserID(request *http.Request) (int, error) {

	// Get user claims
	claims, err := RequiredClaims(request)

	// If the user is not authenticated, return an error
	if err != nil {
		return 0, err
	}

	// A malformed subject means the credential was never ours; fail closed.
	userID, err := claims.UserID()
	if err != nil {
		return 0, apperr.Unauthorized("Could not validate credentials")
	}

	return userID, nil
}
