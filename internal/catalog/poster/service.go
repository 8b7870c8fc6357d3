package poster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/database/schema"
	"github.com/phamduylong/anizora/internal/platform/dberr"
)

type Service struct {
	db     *pgxpool.Pool
	repo   *crud.Repository[Poster]
	logger *slog.Logger
}

func NewService(db *pgxpool.Pool, logger *slog.Logger) *Service {
	return &Service{
		db:     db,
		repo:   crud.NewRepository[Poster](db, Describe()),
		logger: logger,
	}
}

// GetByAnime fetches the artwork set of one anime.
func (service *Service) GetByAnime(context context.Context, animeID int) (*Poster, error) {
	return service.repo.GetByID(context, animeID)
}

// Upsert replaces the artwork set of one anime, creating the row on first
// write.
func (service *Service) Upsert(context context.Context, animeID int, req UpsertRequest) (*Poster, error) {
	t := schema.CatalogPoster
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s
		RETURNING %s, %s, %s, %s, %s, %s
	`,
		t.Table, t.AnimeID, t.Fullsize, t.Big, t.Small, t.Medium, t.Huge,
		t.AnimeID,
		t.Fullsize, t.Fullsize, t.Big, t.Big, t.Small, t.Small,
		t.Medium, t.Medium, t.Huge, t.Huge,
		t.AnimeID, t.Fullsize, t.Big, t.Small, t.Medium, t.Huge,
	)

	rows, err := service.db.Query(context, query,
		animeID, req.Fullsize, req.Big, req.Small, req.Medium, req.Huge,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "upsert_poster")
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[Poster])
	if err != nil {
		return nil, dberr.Wrap(err, "upsert_poster")
	}

	service.logger.Info("poster upserted", slog.Int("anime_id", animeID))
	return record, nil
}
