package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table            string
	ID               string
	Email            string
	Login            string
	Password         string
	Avatar           string
	Role             string
	RegistrationDate string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:            "users.account",
	ID:               "id",
	Email:            "email",
	Login:            "login",
	Password:         "password",
	Avatar:           "avatar",
	Role:             "role",
	RegistrationDate: "registration_date",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.Login, t.Password, t.Avatar, t.Role, t.RegistrationDate,
	}
}
