package comment

import (
	"time"

	"github.com/phamduylong/anizora/internal/platform/crud"
	"github.com/phamduylong/anizora/internal/platform/database/schema"
)

// Comment is a user-authored message attached to an anime title. Replies
// reference their parent comment through the nullable Parent field.
type Comment struct {
	ID          int       `json:"id" db:"id"`
	Message     string    `json:"message" db:"message"`
	CommentDate time.Time `json:"comment_date" db:"comment_date"`
	AnimeID     int       `json:"anime_id" db:"anime_id"`
	UserID      int       `json:"user_id" db:"user_id"`
	Parent      *int      `json:"parent" db:"parent"`
}

// Describe registers the comment entity with the generic engine. Listings by
// anime always come back newest first.
func Describe() crud.Descriptor {
	t := schema.SocialComment
	return crud.Descriptor{
		Table:   t.Table,
		PK:      t.ID,
		Columns: t.Columns(),
		Fields: map[string]crud.Field{
			"id":       {Column: t.ID, Kind: crud.KindInt},
			"anime_id": {Column: t.AnimeID, Kind: crud.KindInt},
			"user_id":  {Column: t.UserID, Kind: crud.KindInt},
			"message":  {Column: t.Message, Kind: crud.KindText},
		},
		Writable: map[string]crud.Field{
			"message":  {Column: t.Message, Kind: crud.KindText},
			"anime_id": {Column: t.AnimeID, Kind: crud.KindInt},
			"user_id":  {Column: t.UserID, Kind: crud.KindInt},
			"parent":   {Column: t.Parent, Kind: crud.KindInt},
		},
		Sortable: map[string]string{
			"id":           t.ID,
			"comment_date": t.CommentDate,
		},
		AttributeOrder: t.CommentDate + " DESC",
	}
}

// CreateRequest is the payload for posting a comment.
type CreateRequest struct {
	Message string `json:"message"`
	AnimeID int    `json:"anime_id"`
	Parent  *int   `json:"parent"`
}
