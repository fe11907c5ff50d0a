package database

import "github.com/mrlokans/studygroups/internal/entities"

func (d *Database) GetUser(id uint) (entities.User, error) {
	row, err := findRow[userRow](d.DB, "user", id)
	if err != nil {
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (d *Database) CreateUser(username string) (entities.User, error) {
	row := userRow{Username: username}
	if err := insertRow(d.DB, "user", &row); err != nil {
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (d *Database) DeleteUser(id uint) error {
	return deleteRow[userRow](d.DB, "user", id)
}

func (d *Database) UpdateUser(user entities.User) (entities.User, error) {
	row, err := updateColumn(d.DB, "user", user.ID(), "username", user.Username(), func(r *userRow) {
		r.Username = user.Username()
	})
	if err != nil {
		return entities.User{}, err
	}
	return row.toEntity(), nil
}
