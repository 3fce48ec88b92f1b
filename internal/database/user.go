package database

import (
	"database/sql"
	"errors"

	"github.com/bhavanishankera7/todo-list-app/internal/models"
)

const userColumns = `id, name, email, password, created_at, updated_at`

func (db *DB) CreateUser(name, email, passwordHash string) (*models.User, error) {
	var user models.User
	query := `INSERT INTO users (name, email, password) VALUES ($1, $2, $3)
		RETURNING ` + userColumns
	if err := db.Get(&user, query, name, email, passwordHash); err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *DB) UserByEmail(email string) (*models.User, error) {
	var user models.User
	err := db.Get(&user, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *DB) UserByID(id int) (*models.User, error) {
	var user models.User
	err := db.Get(&user, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
