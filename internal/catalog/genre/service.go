package genre

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/validate"
	"github.com/phamduylong/anizora/pkg/slug"
)

type Service struct {
	repo   *crud.Repository[Genre]
	logger *slog.Logger
}

func NewService(db *pgxpool.Pool, logger *slog.Logger) *Service {
	return &Service{
		repo:   crud.NewRepository[Genre](db, Describe()),
		logger: logger,
	}
}

func (service *Service) List(context context.Context, filter crud.Filter) ([]*Genre, int, error) {
	return service.repo.GetAll(context, filter)
}

func (service *Service) Get(context context.Context, id int) (*Genre, error) {
	return service.repo.GetByID(context, id)
}

func (service *Service) Create(context context.Context, req CreateRequest) (*Genre, error) {
	v := &validate.Validator{}
	if err := v.Required("name", req.Name).MaxLen("name", req.Name, 200).Err(); err != nil {
		return nil, err
	}

	vals := new(crud.Values).
		Set("name", req.Name).
		Set("slug", slug.From(req.Name))

	created, err := service.repo.Create(context, vals)
	if err != nil {
		return nil, err
	}

	service.logger.Info("genre created", slog.Int("genre_id", created.ID))
	return created, nil
}

func (service *Service) Update(context context.Context, id int, req UpdateRequest) (*Genre, error) {
	if req.Name != nil {
		v := &validate.Validator{}
		if err := v.Required("name", *req.Name).MaxLen("name", *req.Name, 200).Err(); err != nil {
			return nil, err
		}
	}

	vals := &crud.Values{}
	if req.Name != nil {
		vals.Set("name", *req.Name).Set("slug", slug.From(*req.Name))
	}

	return service.repo.Update(context, id, vals)
}

func (service *Service) Remove(context context.Context, id int) (*Genre, error) {
	removed, err := service.repo.Remove(context, id)
	if err != nil {
		return nil, err
	}

	service.logger.Info("genre removed", slog.Int("genre_id", removed.ID))
	return removed, nil
}
