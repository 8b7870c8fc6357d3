package anime

import (
	"context"
	"log/slog"

	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/validate"
)

type Service struct {
	store  *Store
	logger *slog.Logger
}

func NewService(store *Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (service *Service) List(context context.Context, filter crud.Filter) ([]*Anime, int, error) {
	return service.store.List(context, filter)
}

func (service *Service) Get(context context.Context, id int) (*Anime, error) {
	return service.store.Get(context, id)
}

func (service *Service) Chart(context context.Context) ([]*Anime, error) {
	return service.store.Chart(context)
}

// InvalidateChart drops the cached chart view. Exposed for the rating
// sub-resource, whose writes move titles within the chart.
func (service *Service) InvalidateChart(context context.Context) {
	service.store.InvalidateChart(context)
}

func (service *Service) Create(context context.Context, req CreateRequest) (*Anime, error) {
	v := &validate.Validator{}
	err := v.
		Required("name", req.Name).
		MaxLen("name", req.Name, 200).
		Custom("studio_id", req.StudioID <= 0, "must reference a studio").
		Custom("year", req.Year != 0 && req.Year < 1900, "must be 1900 or later").
		Custom("season", req.Season < 0 || req.Season > 4, "must be between 1 and 4").
		Err()
	if err != nil {
		return nil, err
	}

	vals := new(crud.Values).
		Set("name", req.Name).
		Set("alternative_names", req.AlternativeNames).
		Set("status", req.Status).
		Set("count_series", req.CountSeries).
		Set("description", req.Description).
		Set("studio_id", req.StudioID).
		Set("year", req.Year).
		Set("season", req.Season).
		Set("type", req.Type).
		Set("age", req.Age).
		Set("kodik_link", req.KodikLink)

	created, err := service.store.Create(context, vals, req.GenreIDs, req.DirectorIDs)
	if err != nil {
		return nil, err
	}

	service.store.InvalidateChart(context)
	service.logger.Info("anime created", slog.Int("anime_id", created.ID), slog.String("name", created.Name))
	return created, nil
}

func (service *Service) Update(context context.Context, id int, req UpdateRequest) (*Anime, error) {
	v := &validate.Validator{}
	if req.Name != nil {
		v.Required("name", *req.Name).MaxLen("name", *req.Name, 200)
	}
	if req.Year != nil {
		v.Custom("year", *req.Year != 0 && *req.Year < 1900, "must be 1900 or later")
	}
	if req.Season != nil {
		v.Custom("season", *req.Season < 0 || *req.Season > 4, "must be between 1 and 4")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	vals := &crud.Values{}
	if req.Name != nil {
		vals.Set("name", *req.Name)
	}
	if req.AlternativeNames != nil {
		vals.Set("alternative_names", *req.AlternativeNames)
	}
	if req.Status != nil {
		vals.Set("status", *req.Status)
	}
	if req.CountSeries != nil {
		vals.Set("count_series", *req.CountSeries)
	}
	if req.Description != nil {
		vals.Set("description", *req.Description)
	}
	if req.StudioID != nil {
		vals.Set("studio_id", *req.StudioID)
	}
	if req.Year != nil {
		vals.Set("year", *req.Year)
	}
	if req.Season != nil {
		vals.Set("season", *req.Season)
	}
	if req.Type != nil {
		vals.Set("type", *req.Type)
	}
	if req.Age != nil {
		vals.Set("age", *req.Age)
	}
	if req.KodikLink != nil {
		vals.Set("kodik_link", *req.KodikLink)
	}

	updated, err := service.store.Update(context, id, vals, req.GenreIDs, req.DirectorIDs)
	if err != nil {
		return nil, err
	}

	service.store.InvalidateChart(context)
	return updated, nil
}

func (service *Service) Remove(context context.Context, id int) (*Anime, error) {
	removed, err := service.store.Remove(context, id)
	if err != nil {
		return nil, err
	}

	service.store.InvalidateChart(context)
	service.logger.Info("anime removed", slog.Int("anime_id", removed.ID), slog.String("name", removed.Name))
	return removed, nil
}
