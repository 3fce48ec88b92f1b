package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/bhavanishankera7/todo-list-app/internal/models"
)

const todoColumns = `id, title, description, status, priority, due_date, user_id, created_at, updated_at`

// TodosByUser — все задачи пользователя, новые сверху.
func (db *DB) TodosByUser(userID int) ([]models.Todo, error) {
	todos := []models.Todo{}
	err := db.Select(&todos, `SELECT `+todoColumns+` FROM todos
		WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// TodoByID всегда фильтрует по владельцу: чужая задача неотличима от
// несуществующей.
func (db *DB) TodoByID(id, userID int) (*models.Todo, error) {
	var todo models.Todo
	err := db.Get(&todo, `SELECT `+todoColumns+` FROM todos
		WHERE id = $1 AND user_id = $2`, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (db *DB) CreateTodo(todo *models.Todo) error {
	query := `INSERT INTO todos (title, description, status, priority, due_date, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	return db.QueryRowx(query,
		todo.Title, todo.Description, todo.Status, todo.Priority, todo.DueDate, todo.UserID,
	).Scan(&todo.ID, &todo.CreatedAt, &todo.UpdatedAt)
}

// UpdateTodo применяет только переданные поля; updated_at обновляется вместе
// с ними одним запросом.
func (db *DB) UpdateTodo(id, userID int, upd models.TodoUpdate) (*models.Todo, error) {
	set, args := buildTodoUpdate(upd)
	if len(set) == 0 {
		return db.TodoByID(id, userID)
	}

	args = append(args, id, userID)
	query := fmt.Sprintf(`UPDATE todos SET %s WHERE id = $%d AND user_id = $%d
		RETURNING `+todoColumns,
		strings.Join(set, ", "), len(args)-1, len(args))

	var todo models.Todo
	err := db.Get(&todo, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (db *DB) UpdateTodoStatus(id, userID int, status string) (*models.Todo, error) {
	var todo models.Todo
	err := db.Get(&todo, `UPDATE todos SET status = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING `+todoColumns, status, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (db *DB) DeleteTodo(id, userID int) error {
	result, err := db.Exec(`DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// buildTodoUpdate собирает SET-часть частичного обновления с нумерованными
// плейсхолдерами начиная с $1.
func buildTodoUpdate(upd models.TodoUpdate) ([]string, []interface{}) {
	var set []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.Priority != nil {
		add("priority", *upd.Priority)
	}
	if upd.DueDate != nil {
		add("due_date", *upd.DueDate)
	}
	if len(set) > 0 {
		set = append(set, "updated_at = NOW()")
	}
	return set, args
}
