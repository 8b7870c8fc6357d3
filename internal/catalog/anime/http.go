package anime

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phamduylong/anizora/internal/catalog/poster"
	"github.com/phamduylong/anizora/internal/catalog/rating"
	"github.com/phamduylong/anizora/internal/platform/crud"
	requestutil "github.com/phamduylong/anizora/internal/platform/request"
	"github.com/phamduylong/anizora/internal/platform/respond"
	"github.com/phamduylong/anizora/internal/platform/sec"
	"github.com/phamduylong/anizora/pkg/pagination"
)

type roleGuard interface {
	RequireRole(ctx context.Context, userID int, role sec.UserRole) error
}

type Handler struct {
	service *Service
	ratings *rating.Service
	posters *poster.Service
	guard   roleGuard
}

func NewHandler(service *Service, ratings *rating.Service, posters *poster.Service, guard roleGuard) *Handler {
	return &Handler{
		service: service,
		ratings: ratings,
		posters: posters,
		guard:   guard,
	}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Get("/chart", handler.chart)
	router.Get("/{id}", handler.get)
	router.Post("/", handler.create)
	router.Patch("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)
	router.Put("/{id}/rating", handler.upsertRating)
	router.Put("/{id}/poster", handler.upsertPoster)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := crud.ParseFilter(request.URL.Query())

	items, total, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, items, pagination.NewMeta(filter.Limit, filter.Offset, total))
}

func (handler *Handler) chart(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.Chart(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, items)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	if err := handler.requireAdmin(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var req CreateRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	if err := handler.requireAdmin(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var req UpdateRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), id, req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.requireAdmin(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	removed, err := handler.service.Remove(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, removed)
}

func (handler *Handler) upsertRating(writer http.ResponseWriter, request *http.Request) {
	if err := handler.requireAdmin(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var req rating.UpsertRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The title must exist before a score set can hang off it.
	if _, err := handler.service.Get(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	upserted, err := handler.ratings.Upsert(request.Context(), id, req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.service.InvalidateChart(request.Context())
	respond.OK(writer, upserted)
}

func (handler *Handler) upsertPoster(writer http.ResponseWriter, request *http.Request) {
	if err := handler.requireAdmin(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var req poster.UpsertRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.Get(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	upserted, err := handler.posters.Upsert(request.Context(), id, req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, upserted)
}

func (handler *Handler) requireAdmin(request *http.Request) error {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		return err
	}
	return handler.guard.RequireRole(request.Context(), userID, sec.RoleAdmin)
}
