package comment

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/sec"
	"github.com/phamduylong/anizora/internal/platform/validate"
)

type roleGuard interface {
	RequireRole(ctx context.Context, userID int, role sec.UserRole) error
}

type Service struct {
	repo   *crud.Repository[Comment]
	guard  roleGuard
	logger *slog.Logger
}

func NewService(db *pgxpool.Pool, guard roleGuard, logger *slog.Logger) *Service {
	return &Service{
		repo:   crud.NewRepository[Comment](db, Describe()),
		guard:  guard,
		logger: logger,
	}
}

// ListByAnime returns every comment on a title, newest first, plus the count.
func (service *Service) ListByAnime(context context.Context, animeID int) ([]*Comment, int, error) {
	return service.repo.GetAllByAttribute(context, "anime_id", animeID)
}

// Create posts a comment as the given user. The timestamp is assigned by the
// storage layer.
func (service *Service) Create(context context.Context, userID int, req CreateRequest) (*Comment, error) {
	v := &validate.Validator{}
	err := v.
		Required("message", req.Message).
		MaxLen("message", req.Message, 2000).
		Custom("anime_id", req.AnimeID <= 0, "must reference an anime").
		Err()
	if err != nil {
		return nil, err
	}

	vals := new(crud.Values).
		Set("message", req.Message).
		Set("anime_id", req.AnimeID).
		Set("user_id", userID).
		SetIf(req.Parent != nil, "parent", req.Parent)

	created, err := service.repo.Create(context, vals)
	if err != nil {
		return nil, err
	}

	service.logger.Info("comment posted",
		slog.Int("comment_id", created.ID),
		slog.Int("anime_id", created.AnimeID),
		slog.Int("user_id", created.UserID),
	)
	return created, nil
}

// Remove deletes a comment. The author may delete their own; anyone else
// must hold the admin role.
func (service *Service) Remove(context context.Context, callerID, id int) (*Comment, error) {
	found, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	if found.UserID != callerID {
		if err := service.guard.RequireRole(context, callerID, sec.RoleAdmin); err != nil {
			return nil, err
		}
	}

	removed, err := service.repo.Remove(context, id)
	if err != nil {
		return nil, err
	}

	service.logger.Info("comment removed", slog.Int("comment_id", removed.ID))
	return removed, nil
}
