package anime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/phamduylong/anizora/internal/catalog/director"
	"github.com/phamduylong/anizora/internal/catalog/genre"
	"github.com/phamduylong/anizora/internal/catalog/poster"
	"github.com/phamduylong/anizora/internal/catalog/rating"
	"github.com/phamduylong/anizora/internal/catalog/studio"
	"github.com/phamduylong/anizora/internal/platform/constants"
	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/database/schema"
	"github.com/phamduylong/anizora/internal/platform/dberr"
	"github.com/phamduylong/anizora/pkg/slice"
)

const (
	// chartLimit caps the top-rated chart regardless of catalog size.
	chartLimit = 100

	// chartCacheTTL bounds chart staleness; the view changes slowly.
	chartCacheTTL = 5 * time.Minute

	chartCacheKey = constants.RedisPrefixChart + "top"
)

// Store layers relation hydration, the chart view, and its cache on top of
// the generic repository.
type Store struct {
	repo   *crud.Repository[Anime]
	db     *pgxpool.Pool
	cache  *redis.Client
	logger *slog.Logger
}

func NewStore(db *pgxpool.Pool, cache *redis.Client, logger *slog.Logger) *Store {
	return &Store{
		repo:   crud.NewRepository[Anime](db, Describe()),
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (store *Store) List(context context.Context, filter crud.Filter) ([]*Anime, int, error) {
	items, total, err := store.repo.GetAll(context, filter)
	if err != nil {
		return nil, 0, err
	}
	if err := store.hydrate(context, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (store *Store) Get(context context.Context, id int) (*Anime, error) {
	found, err := store.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}
	if err := store.hydrate(context, []*Anime{found}); err != nil {
		return nil, err
	}
	return found, nil
}

func (store *Store) Create(context context.Context, vals *crud.Values, genreIDs, directorIDs []int) (*Anime, error) {
	created, err := store.repo.Create(context, vals)
	if err != nil {
		return nil, err
	}

	if err := store.setGenres(context, created.ID, genreIDs); err != nil {
		return nil, err
	}
	if err := store.setDirectors(context, created.ID, directorIDs); err != nil {
		return nil, err
	}

	return store.Get(context, created.ID)
}

func (store *Store) Update(context context.Context, id int, vals *crud.Values, genreIDs, directorIDs *[]int) (*Anime, error) {
	if _, err := store.repo.Update(context, id, vals); err != nil {
		return nil, err
	}

	if genreIDs != nil {
		if err := store.setGenres(context, id, *genreIDs); err != nil {
			return nil, err
		}
	}
	if directorIDs != nil {
		if err := store.setDirectors(context, id, *directorIDs); err != nil {
			return nil, err
		}
	}

	return store.Get(context, id)
}

func (store *Store) Remove(context context.Context, id int) (*Anime, error) {
	// Junction, rating, and poster rows go with the title via ON DELETE CASCADE.
	return store.repo.Remove(context, id)
}

// Chart returns the fixed "top rated, currently airing" view: titles with the
// chart status, best average rating first, capped at chartLimit. The view is
// served from cache when fresh.
func (store *Store) Chart(context context.Context) ([]*Anime, error) {
	if cached, err := store.cache.Get(context, chartCacheKey).Bytes(); err == nil {
		var items []*Anime
		if err := json.Unmarshal(cached, &items); err == nil {
			return items, nil
		}
		store.logger.Warn("discarding undecodable chart cache entry")
	} else if err != redis.Nil {
		store.logger.Warn("chart cache read failed", slog.String("error", err.Error()))
	}

	a := schema.CatalogAnime
	r := schema.CatalogRating
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s AS a
		JOIN %s AS r ON r.%s = a.%s
		WHERE a.%s = $1
		ORDER BY r.%s DESC
		LIMIT $2
	`,
		"a."+strings.Join(a.Columns(), ", a."),
		a.Table, r.Table, r.AnimeID, a.ID, a.Status, r.Average,
	)

	rows, err := store.db.Query(context, query, ChartStatus, chartLimit)
	if err != nil {
		return nil, dberr.Wrap(err, "chart_anime")
	}

	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[Anime])
	if err != nil {
		return nil, dberr.Wrap(err, "chart_anime")
	}

	if err := store.hydrate(context, items); err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(items); err == nil {
		if err := store.cache.Set(context, chartCacheKey, encoded, chartCacheTTL).Err(); err != nil {
			store.logger.Warn("chart cache write failed", slog.String("error", err.Error()))
		}
	}

	return items, nil
}

// InvalidateChart drops the cached chart view after a catalog mutation.
func (store *Store) InvalidateChart(context context.Context) {
	if err := store.cache.Del(context, chartCacheKey).Err(); err != nil {
		store.logger.Warn("chart cache invalidation failed", slog.String("error", err.Error()))
	}
}

// setGenres replaces the genre set of one title.
func (store *Store) setGenres(context context.Context, animeID int, genreIDs []int) error {
	j := schema.CatalogAnimeGenre

	clear := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, j.Table, j.AnimeID)
	if _, err := store.db.Exec(context, clear, animeID); err != nil {
		return dberr.Wrap(err, "set_anime_genres")
	}

	if len(genreIDs) == 0 {
		return nil
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s, %s) SELECT $1, unnest($2::int[])`, j.Table, j.AnimeID, j.GenreID)
	if _, err := store.db.Exec(context, insert, animeID, genreIDs); err != nil {
		return dberr.Wrap(err, "set_anime_genres")
	}
	return nil
}

// setDirectors replaces the director set of one title.
func (store *Store) setDirectors(context context.Context, animeID int, directorIDs []int) error {
	j := schema.CatalogAnimeDirector

	clear := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, j.Table, j.AnimeID)
	if _, err := store.db.Exec(context, clear, animeID); err != nil {
		return dberr.Wrap(err, "set_anime_directors")
	}

	if len(directorIDs) == 0 {
		return nil
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s, %s) SELECT $1, unnest($2::int[])`, j.Table, j.AnimeID, j.DirectorID)
	if _, err := store.db.Exec(context, insert, animeID, directorIDs); err != nil {
		return dberr.Wrap(err, "set_anime_directors")
	}
	return nil
}

// hydrate attaches studio, genres, directors, rating, and poster to each
// title, batching one query per relation across the whole page.
func (store *Store) hydrate(context context.Context, items []*Anime) error {
	if len(items) == 0 {
		return nil
	}

	ids := slice.Map(items, func(a *Anime) int { return a.ID })

	studios, err := store.loadStudios(context, items)
	if err != nil {
		return err
	}
	genres, err := store.loadGenres(context, ids)
	if err != nil {
		return err
	}
	directors, err := store.loadDirectors(context, ids)
	if err != nil {
		return err
	}
	ratings, err := store.loadRatings(context, ids)
	if err != nil {
		return err
	}
	posters, err := store.loadPosters(context, ids)
	if err != nil {
		return err
	}

	for _, item := range items {
		item.Studio = studios[item.StudioID]
		item.Genres = genres[item.ID]
		item.Directors = directors[item.ID]
		item.Rating = ratings[item.ID]
		item.Poster = posters[item.ID]
	}
	return nil
}

func (store *Store) loadStudios(context context.Context, items []*Anime) (map[int]*studio.Studio, error) {
	t := schema.RefStudio
	studioIDs := slice.Map(items, func(a *Anime) int { return a.StudioID })

	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ANY($1)`, t.ID, t.Name, t.Table, t.ID)
	rows, err := store.db.Query(context, query, studioIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "load_anime_studios")
	}
	defer rows.Close()

	result := make(map[int]*studio.Studio)
	for rows.Next() {
		s := &studio.Studio{}
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, dberr.Wrap(err, "load_anime_studios")
		}
		result[s.ID] = s
	}
	return result, rows.Err()
}

func (store *Store) loadGenres(context context.Context, animeIDs []int) (map[int][]genre.Genre, error) {
	j := schema.CatalogAnimeGenre
	g := schema.RefGenre

	query := fmt.Sprintf(`
		SELECT j.%s, g.%s, g.%s, g.%s
		FROM %s AS j
		JOIN %s AS g ON g.%s = j.%s
		WHERE j.%s = ANY($1)
	`,
		j.AnimeID, g.ID, g.Name, g.Slug,
		j.Table, g.Table, g.ID, j.GenreID, j.AnimeID,
	)

	rows, err := store.db.Query(context, query, animeIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "load_anime_genres")
	}
	defer rows.Close()

	result := make(map[int][]genre.Genre)
	for rows.Next() {
		var animeID int
		var item genre.Genre
		if err := rows.Scan(&animeID, &item.ID, &item.Name, &item.Slug); err != nil {
			return nil, dberr.Wrap(err, "load_anime_genres")
		}
		result[animeID] = append(result[animeID], item)
	}
	return result, rows.Err()
}

func (store *Store) loadDirectors(context context.Context, animeIDs []int) (map[int][]director.Director, error) {
	j := schema.CatalogAnimeDirector
	d := schema.RefDirector

	query := fmt.Sprintf(`
		SELECT j.%s, d.%s, d.%s
		FROM %s AS j
		JOIN %s AS d ON d.%s = j.%s
		WHERE j.%s = ANY($1)
	`,
		j.AnimeID, d.ID, d.Name,
		j.Table, d.Table, d.ID, j.DirectorID, j.AnimeID,
	)

	rows, err := store.db.Query(context, query, animeIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "load_anime_directors")
	}
	defer rows.Close()

	result := make(map[int][]director.Director)
	for rows.Next() {
		var animeID int
		var item director.Director
		if err := rows.Scan(&animeID, &item.ID, &item.Name); err != nil {
			return nil, dberr.Wrap(err, "load_anime_directors")
		}
		result[animeID] = append(result[animeID], item)
	}
	return result, rows.Err()
}

func (store *Store) loadRatings(context context.Context, animeIDs []int) (map[int]*rating.Rating, error) {
	t := schema.CatalogRating

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1)`,
		strings.Join(t.Columns(), ", "), t.Table, t.AnimeID)

	rows, err := store.db.Query(context, query, animeIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "load_anime_ratings")
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[rating.Rating])
	if err != nil {
		return nil, dberr.Wrap(err, "load_anime_ratings")
	}

	result := make(map[int]*rating.Rating, len(records))
	for _, record := range records {
		result[record.AnimeID] = record
	}
	return result, nil
}

func (store *Store) loadPosters(context context.Context, animeIDs []int) (map[int]*poster.Poster, error) {
	t := schema.CatalogPoster

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1)`,
		strings.Join(t.Columns(), ", "), t.Table, t.AnimeID)

	rows, err := store.db.Query(context, query, animeIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "load_anime_posters")
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[poster.Poster])
	if err != nil {
		return nil, dberr.Wrap(err, "load_anime_posters")
	}

	result := make(map[int]*poster.Poster, len(records))
	for _, record := range records {
		result[record.AnimeID] = record
	}
	return result, nil
}
