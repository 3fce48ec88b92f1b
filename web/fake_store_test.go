package web

import (
	"sort"
	"sync"
	"time"

	"github.com/bhavanishankera7/todo-list-app/internal/models"
)

// fakeStore — потокобезопасная замена PostgreSQL для тестов обработчиков.
// Семантика повторяет internal/database: фильтрация по владельцу,
// ErrNotFound для чужих и отсутствующих записей.
type fakeStore struct {
	mu       sync.Mutex
	users    map[int]*models.User
	todos    map[int]*models.Todo
	nextUser int
	nextTodo int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[int]*models.User{},
		todos:    map[int]*models.Todo{},
		nextUser: 1,
		nextTodo: 1,
	}
}

func (s *fakeStore) CreateUser(name, email, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	user := &models.User{
		ID:        s.nextUser,
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextUser++
	s.users[user.ID] = user
	copied := *user
	return &copied, nil
}

func (s *fakeStore) UserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *fakeStore) UserByID(id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeStore) TodosByUser(userID int) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos := []models.Todo{}
	for _, todo := range s.todos {
		if todo.UserID == userID {
			todos = append(todos, *todo)
		}
	}
	// новые сверху, как ORDER BY created_at DESC
	sort.Slice(todos, func(i, j int) bool {
		if todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].ID > todos[j].ID
		}
		return todos[i].CreatedAt.After(todos[j].CreatedAt)
	})
	return todos, nil
}

func (s *fakeStore) TodoByID(id, userID int) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ownedLocked(id, userID)
}

func (s *fakeStore) ownedLocked(id, userID int) (*models.Todo, error) {
	todo, ok := s.todos[id]
	if !ok || todo.UserID != userID {
		return nil, models.ErrNotFound
	}
	copied := *todo
	return &copied, nil
}

func (s *fakeStore) CreateTodo(todo *models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	todo.ID = s.nextTodo
	todo.CreatedAt = now
	todo.UpdatedAt = now
	s.nextTodo++

	copied := *todo
	s.todos[todo.ID] = &copied
	return nil
}

func (s *fakeStore) UpdateTodo(id, userID int, upd models.TodoUpdate) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok || todo.UserID != userID {
		return nil, models.ErrNotFound
	}

	if upd.Title != nil {
		todo.Title = *upd.Title
	}
	if upd.Description != nil {
		todo.Description = upd.Description
	}
	if upd.Status != nil {
		todo.Status = *upd.Status
	}
	if upd.Priority != nil {
		todo.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		todo.DueDate = upd.DueDate
	}
	todo.UpdatedAt = time.Now()

	copied := *todo
	return &copied, nil
}

func (s *fakeStore) UpdateTodoStatus(id, userID int, status string) (*models.Todo, error) {
	return s.UpdateTodo(id, userID, models.TodoUpdate{Status: &status})
}

func (s *fakeStore) DeleteTodo(id, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok || todo.UserID != userID {
		return models.ErrNotFound
	}
	delete(s.todos, id)
	return nil
}
