package genre

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phamduylong/anizora/internal/platform/crud"
	requestutil "github.com/phamduylong/anizora/internal/platform/request"
	"github.com/phamduylong/anizora/internal/platform/respond"
	"github.com/phamduylong/anizora/internal/platform/sec"
	"github.com/phamduylong/anizora/pkg/pagination"
)

// roleGuard resolves the caller's account and checks its role before any
// catalog mutation runs.
type roleGuard interface {
	RequireRole(ctx context.Context, userID int, role sec.UserRole) error
}

type Handler struct {
	service *Service
	guard   roleGuard
}

func NewHandler(service *Service, guard roleGuard) *Handler {
	return &Handler{service: service, guard: guard}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Post("/", handler.create)
	router.Patch("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := crud.ParseFilter(request.URL.Query())

	genres, total, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, genres, pagination.NewMeta(filter.Limit, filter.Offset, total))
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

// requireAdmin resolves the session user and checks the admin role.
// Failure short-circuits the mutation before any write happens.
func (handler *Handler) requireAdmin(request *http.Request) error {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		return err
	}
	return handler.guard.RequireRole(request.Context(), userID, sec.RoleAdmin)
}
