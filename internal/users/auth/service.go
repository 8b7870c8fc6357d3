// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package auth

import (
	"context"
	"log/slog"

	"github.com/phamduylong/anizora/internal/platform/apperr"
	"github.com/phamduylong/anizora/internal/platform/constants"
	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/sec"
	"github.com/phamduylong/anizora/internal/platform/validate"
)

type Service struct {
	store   *Store
	tokens  *sec.TokenService
	hasher  *sec.PasswordHasher
	captcha CaptchaVerifier
	logger  *slog.Logger
}

func NewService(store *Store, tokens *sec.TokenService, hasher *sec.PasswordHasher, captcha CaptchaVerifier, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		tokens:  tokens,
		hasher:  hasher,
		captcha: captcha,
		logger:  logger,
	}
}

// Register creates an account and mints its first session token.
//
// # Flow
//  1. The captcha must verify; bots stop here.
//  2. The email must look like an email, and login/password must be present.
//  3. Login and email must both be unclaimed.
//  4. The account is stored with the deterministic password digest and the
//     default role.
func (service *Service) Register(context context.Context, req RegistrationRequest) (*User, string, error) {
	if !service.captcha.Verify(context, req.CaptchaToken) {
		return nil, "", apperr.ValidationError("Invalid captcha")
	}

	v := &validate.Validator{}
	err := v.
		Required("login", req.Login).
		MaxLen("login", req.Login, 100).
		Required("password", req.Password).
		MinLen("password", req.Password, 8).
		Email("email", req.Email).
		Err()
	if err != nil {
		return nil, "", err
	}

	if _, err := service.store.GetByLogin(context, req.Login); err == nil {
		return nil, "", apperr.Conflict("This login is already taken")
	} else if !isNotFound(err) {
		return nil, "", err
	}
	if _, err := service.store.GetByEmail(context, req.Email); err == nil {
		return nil, "", apperr.Conflict("This email is already registered")
	} else if !isNotFound(err) {
		return nil, "", err
	}

	vals := new(crud.Values).
		Set("email", req.Email).
		Set("login", req.Login).
		Set("password", service.hasher.Hash(req.Password)).
		Set("role", string(sec.RoleUser))

	user, err := service.store.Create(context, vals)
	if err != nil {
		return nil, "", err
	}

	token, err := service.tokens.GenerateToken(user.ID, constants.AccessTokenTTL)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	service.logger.Info("user registered", slog.Int("user_id", user.ID), slog.String("login", user.Login))
	return user, token, nil
}

// Login authenticates by login or email plus password and mints a session
// token. The digest comparison happens inside the credential query itself.
func (service *Service) Login(context context.Context, req LoginRequest) (*User, string, error) {
	if !service.captcha.Verify(context, req.CaptchaToken) {
		return nil, "", apperr.ValidationError("Invalid captcha")
	}

	user, err := service.store.GetByCredentials(context, req.Login, service.hasher.Hash(req.Password))
	if err != nil {
		if isNotFound(err) {
			return nil, "", apperr.Unauthorized("Invalid login credentials")
		}
		return nil, "", err
	}

	token, err := service.tokens.GenerateToken(user.ID, constants.AccessTokenTTL)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	service.logger.Info("user logged in", slog.Int("user_id", user.ID))
	return user, token, nil
}

// Profile returns the caller's own account record.
func (service *Service) Profile(context context.Context, userID int) (*User, error) {
	return service.store.GetProfile(context, userID)
}

func isNotFound(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.Code == "NOT_FOUND"
}
