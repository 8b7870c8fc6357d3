package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/phamduylong/anizora/internal/platform/request"
	"github.com/phamduylong/anizora/internal/platform/respond"
	"github.com/phamduylong/anizora/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/anime/{id}", handler.listByAnime)
	router.Post("/", handler.create)
	router.Delete("/{id}", handler.remove)
}

func (handler *Handler) listByAnime(writer http.ResponseWriter, request *http.Request) {
	animeID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comments, total, err := handler.service.ListByAnime(request.Context(), animeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	// The listing is unpaginated; the window simply spans the result.
	respond.Paginated(writer, comments, pagination.NewMeta(len(comments), 0, total))
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var req CreateRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), userID, req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	removed, err := handler.service.Remove(request.Context(), userID, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, removed)
}
