// Package web — HTTP-слой приложения: маршруты, middleware и обработчики.
package web

import (
	"github.com/bhavanishankera7/todo-list-app/internal/models"
	"github.com/bhavanishankera7/todo-list-app/internal/token"
)

// UserStore — операции над пользователями, нужные HTTP-слою.
type UserStore interface {
	CreateUser(name, email, passwordHash string) (*models.User, error)
	UserByEmail(email string) (*models.User, error)
	UserByID(id int) (*models.User, error)
}

// TodoStore — операции над задачами; каждая сверяет владельца.
type TodoStore interface {
	TodosByUser(userID int) ([]models.Todo, error)
	TodoByID(id, userID int) (*models.Todo, error)
	CreateTodo(todo *models.Todo) error
	UpdateTodo(id, userID int, upd models.TodoUpdate) (*models.Todo, error)
	UpdateTodoStatus(id, userID int, status string) (*models.Todo, error)
	DeleteTodo(id, userID int) error
}

type Store interface {
	UserStore
	TodoStore
}

type app struct {
	store  Store
	tokens *token.Service
}
