package rating

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
	repo   *crud.Repository[Rating]
	logger *slog.Logger
}

func NewService(db *pgxpool.Pool, logger *slog.Logger) *Service {
	return &Service{
		db:     db,
		repo:   crud.NewRepository[Rating](db, Describe()),
		logger: logger,
	}
}

// GetByAnime fetches the score set of one anime.
func (service *Service) GetByAnime(context context.Context, animeID int) (*Rating, error) {
	return service.repo.GetByID(context, animeID)
}

// Upsert replaces the score set of one anime, recomputing the stored average.
// The row is created on first write and updated in place afterwards.
func (service *Service) Upsert(context context.Context, animeID int, req UpsertRequest) (*Rating, error) {
	t := schema.CatalogRating
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
		RETURNING %s, %s, %s, %s, %s, %s, %s
	`,
		t.Table, t.AnimeID, t.KpRating, t.ShikimoriRating, t.AnidubRating, t.MyAnimeListRating, t.WorldArtRating, t.Average,
		t.AnimeID,
		t.KpRating, t.KpRating, t.ShikimoriRating, t.ShikimoriRating, t.AnidubRating, t.AnidubRating,
		t.MyAnimeListRating, t.MyAnimeListRating, t.WorldArtRating, t.WorldArtRating, t.Average, t.Average,
		t.AnimeID, t.KpRating, t.ShikimoriRating, t.AnidubRating, t.MyAnimeListRating, t.WorldArtRating, t.Average,
	)

	rows, err := service.db.Query(context, query,
		animeID, req.Kp, req.Shikimori, req.Anidub, req.MyAnimeList, req.WorldArt, req.AverageOf(),
	)
	if err != nil {
		return nil, dberr.Wrap(err, "upsert_rating")
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[Rating])
	if err != nil {
		return nil, dberr.Wrap(err, "upsert_rating")
	}

	service.logger.Info("rating upserted", slog.Int("anime_id", animeID))
	return record, nil
}
