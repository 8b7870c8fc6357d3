// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package list

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/phamduylong/anizora/internal/platform/request"
	"github.com/phamduylong/anizora/internal/platform/respond"
	"github.com/phamduylong/anizora/pkg/pagination"
)

// Handler serves the caller's own watch-list. Ownership is implicit: the
// user id always comes from the session credential, never from the URL.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Put("/{anime_id}", handler.upsert)
	router.Delete("/{anime_id}", handler.remove)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entries, total, err := handler.service.ListByUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, entries, pagination.NewMeta(len(entries), 0, total))
}

func (handler *Handler) upsert(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	animeID, err := requestutil.IntParam(request, "anime_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var req UpsertRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Upsert(request.Context(), userID, animeID, req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entry)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	animeID, err := requestutil.IntParam(request, "anime_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Remove(request.Context(), userID, animeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entry)
}
