package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bhavanishankera7/todo-list-app/internal/models"
	"github.com/bhavanishankera7/todo-list-app/internal/validation"
)

func todoID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID"})
		return 0, false
	}
	return id, true
}

func (a *app) listTodos(c *gin.Context) {
	user := currentUser(c)

	todos, err := a.store.TodosByUser(user.ID)
	if err != nil {
		storeError(c, "Failed to get todos", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"todos": todos})
}

func (a *app) getTodo(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}
	user := currentUser(c)

	todo, err := a.store.TodoByID(id, user.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			todoNotFound(c)
			return
		}
		storeError(c, "Failed to get todo", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"todo": todo})
}

func (a *app) createTodo(c *gin.Context) {
	var req models.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}
	user := currentUser(c)

	// владелец берётся из токена, значение из тела игнорируется
	todo := &models.Todo{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusPending,
		Priority:    req.Priority,
		UserID:      user.ID,
	}
	if todo.Priority == "" {
		todo.Priority = models.PriorityMedium
	}
	if req.DueDate != nil {
		// дата уже прошла схему, парсинг не может не удаться
		if t, err := validation.ParseDate(*req.DueDate); err == nil {
			todo.DueDate = &t
		}
	}

	if err := a.store.CreateTodo(todo); err != nil {
		storeError(c, "Failed to create todo", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Todo created successfully",
		"todo":    todo,
	})
}

func (a *app) updateTodo(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}

	var req models.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}
	user := currentUser(c)

	upd := models.TodoUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	}
	if req.DueDate != nil {
		if t, err := validation.ParseDate(*req.DueDate); err == nil {
			upd.DueDate = &t
		}
	}

	todo, err := a.store.UpdateTodo(id, user.ID, upd)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			todoNotFound(c)
			return
		}
		storeError(c, "Failed to update todo", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo updated successfully",
		"todo":    todo,
	})
}

func (a *app) deleteTodo(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}
	user := currentUser(c)

	if err := a.store.DeleteTodo(id, user.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			todoNotFound(c)
			return
		}
		storeError(c, "Failed to delete todo", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}

func (a *app) updateTodoStatus(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}
	user := currentUser(c)

	// без статуса в теле менять нечего — отдаём текущую запись
	var (
		todo *models.Todo
		err  error
	)
	if req.Status == "" {
		todo, err = a.store.TodoByID(id, user.ID)
	} else {
		todo, err = a.store.UpdateTodoStatus(id, user.ID, req.Status)
	}
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			todoNotFound(c)
			return
		}
		storeError(c, "Failed to update todo status", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo status updated successfully",
		"todo":    todo,
	})
}
