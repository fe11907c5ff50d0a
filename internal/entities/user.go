package entities

// User is a member of the application. Only the username can change after creation.
type User struct {
	id       uint
	username string
}

// SerializedUser is the API representation of a User.
type SerializedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func NewUser(id uint, username string) User {
	return User{id: id, username: username}
}

func (u User) ID() uint         { return u.id }
func (u User) Username() string { return u.username }

// WithUsername returns a copy of the user carrying the new username.
func (u User) WithUsername(username string) User {
	u.username = username
	return u
}

func (u User) Serialize() any {
	return SerializedUser{ID: u.id, Username: u.username}
}
