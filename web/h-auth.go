package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/bhavanishankera7/todo-list-app/internal/models"
)

func (a *app) register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		storeError(c, "Failed to register user", err)
		return
	}

	// дубликат email придёт как ошибка уникального индекса
	user, err := a.store.CreateUser(req.Name, req.Email, string(hash))
	if err != nil {
		storeError(c, "Failed to register user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

func (a *app) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	// неизвестный email и неверный пароль дают одинаковый ответ
	user, err := a.store.UserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		storeError(c, "Failed to login", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	signed, err := a.tokens.Issue(user.ID)
	if err != nil {
		storeError(c, "Failed to generate token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   signed,
	})
}

func (a *app) profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": currentUser(c)})
}

// health отвечает и анонимам; авторизованным дополнительно отдаёт их профиль.
func (a *app) health(c *gin.Context) {
	if user := currentUser(c); user != nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "user": user})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
