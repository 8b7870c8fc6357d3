// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phamduylong/anizora/internal/platform/constants"
	requestutil "github.com/phamduylong/anizora/internal/platform/request"
	"github.com/phamduylong/anizora/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/registration", handler.register)
	router.Post("/login", handler.login)
	router.Get("/profile", handler.profile)
}

func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var req RegistrationRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	_, token, err := handler.service.Register(request.Context(), req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	respond.Created(writer, TokenResponse{AccessToken: token})
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var req LoginRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	_, token, err := handler.service.Login(request.Context(), req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(constants.SessionCookieTTL.Seconds()),
	})
	respond.OK(writer, TokenResponse{AccessToken: token})
}

func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Profile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}
