package director

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/validate"
	"github.com/phamduylong/anizora/pkg/pointer"
)

type Service struct {
	repo   *crud.Repository[Director]
	logger *slog.Logger
}

func NewService(db *pgxpool.Pool, logger *slog.Logger) *Service {
	return &Service{
		repo:   crud.NewRepository[Director](db, Describe()),
		logger: logger,
	}
}

func (service *Service) List(context context.Context, filter crud.Filter) ([]*Director, int, error) {
	return service.repo.GetAll(context, filter)
}

func (service *Service) Get(context context.Context, id int) (*Director, error) {
	return service.repo.GetByID(context, id)
}

func (service *Service) Create(context context.Context, req CreateRequest) (*Director, error) {
	v := &validate.Validator{}
	if err := v.Required("name", req.Name).MaxLen("name", req.Name, 200).Err(); err != nil {
		return nil, err
	}

	created, err := service.repo.Create(context, new(crud.Values).Set("name", req.Name))
	if err != nil {
		return nil, err
	}

	service.logger.Info("director created", slog.Int("director_id", created.ID))
	return created, nil
}

func (service *Service) Update(context context.Context, id int, req UpdateRequest) (*Director, error) {
	if req.Name != nil {
		v := &validate.Validator{}
		if err := v.Required("name", *req.Name).MaxLen("name", *req.Name, 200).Err(); err != nil {
			return nil, err
		}
	}

	vals := new(crud.Values).SetIf(req.Name != nil, "name", pointer.Val(req.Name))
	return service.repo.Update(context, id, vals)
}

func (service *Service) Remove(context context.Context, id int) (*Director, error) {
	removed, err := service.repo.Remove(context, id)
	if err != nil {
		return nil, err
	}

	service.logger.Info("director removed", slog.Int("director_id", removed.ID))
	return removed, nil
}
