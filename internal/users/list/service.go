// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package list

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/database/schema"
	"github.com/phamduylong/anizora/internal/platform/dberr"
	"github.com/phamduylong/anizora/internal/platform/validate"
)

type Service struct {
	repo   *crud.Repository[Entry]
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewService(db *pgxpool.Pool, logger *slog.Logger) *Service {
	return &Service{
		repo:   crud.NewRepository[Entry](db, Describe()),
		db:     db,
		logger: logger,
	}
}

// ListByUser returns every watch-list entry of one account.
func (service *Service) ListByUser(context context.Context, userID int) ([]*Entry, int, error) {
	return service.repo.GetAllByAttribute(context, "user_id", userID)
}

// Upsert sets the watch state of a title for one account, creating the entry
// on first write.
func (service *Service) Upsert(context context.Context, userID, animeID int, req UpsertRequest) (*Entry, error) {
	v := &validate.Validator{}
	err := v.
		Required("status", req.Status).
		OneOf("status", req.Status, StatusWatching, StatusPlanned, StatusCompleted, StatusDropped).
		Err()
	if err != nil {
		return nil, err
	}

	t := schema.UserList
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s, %s, %s
	`,
		t.Table, t.UserID, t.AnimeID, t.Status,
		t.UserID, t.AnimeID, t.Status, t.Status,
		t.UserID, t.AnimeID, t.Status,
	)

	rows, err := service.db.Query(context, query, userID, animeID, req.Status)
	if err != nil {
		return nil, dberr.Wrap(err, "upsert_list_entry")
	}

	entry, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[Entry])
	if err != nil {
		return nil, dberr.Wrap(err, "upsert_list_entry")
	}

	service.logger.Info("watch-list entry set",
		slog.Int("user_id", userID),
		slog.Int("anime_id", animeID),
		slog.String("status", entry.Status),
	)
	return entry, nil
}

// Remove drops a title from one account's watch-list.
func (service *Service) Remove(context context.Context, userID, animeID int) (*Entry, error) {
	t := schema.UserList
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND %s = $2
		RETURNING %s, %s, %s
	`,
		t.Table, t.UserID, t.AnimeID,
		t.UserID, t.AnimeID, t.Status,
	)

	rows, err := service.db.Query(context, query, userID, animeID)
	if err != nil {
		return nil, dberr.Wrap(err, "remove_list_entry")
	}

	entry, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[Entry])
	if err != nil {
		return nil, dberr.Wrap(err, "remove_list_entry")
	}

	service.logger.Info("watch-list entry removed",
		slog.Int("user_id", userID),
		slog.Int("anime_id", animeID),
	)
	return entry, nil
}
