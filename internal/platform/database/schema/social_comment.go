package schema

// SocialCommentTable represents the 'social.comment' table
type SocialCommentTable struct {
	Table       string
	ID          string
	Message     string
	CommentDate string
	AnimeID     string
	UserID      string
	Parent      string
}

// SocialComment is the schema definition for social.comment
var SocialComment = SocialCommentTable{
	Table:       "social.comment",
	ID:          "id",
	Message:     "message",
	CommentDate: "comment_date",
	AnimeID:     "anime_id",
	UserID:      "user_id",
	Parent:      "parent",
}

func (t SocialCommentTable) Columns() []string {
	return []string{t.ID, t.Message, t.CommentDate, t.AnimeID, t.UserID, t.Parent}
}
