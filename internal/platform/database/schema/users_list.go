package schema

// UserListTable represents the 'users.list' watch-list table
type UserListTable struct {
	Table   string
	UserID  string
	AnimeID string
	Status  string
}

// UserList is the schema definition for users.list
var UserList = UserListTable{
	Table:   "users.list",
	UserID:  "user_id",
	AnimeID: "anime_id",
	Status:  "status",
}

func (t UserListTable) Columns() []string {
	return []string{t.UserID, t.AnimeID, t.Status}
}
