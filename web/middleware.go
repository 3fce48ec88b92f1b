package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhavanishankera7/todo-list-app/internal/models"
	"github.com/bhavanishankera7/todo-list-app/internal/token"
	"github.com/bhavanishankera7/todo-list-app/internal/validation"
)

const userKey = "currentUser"

// authenticate: заголовок -> токен -> user id -> пользователь из хранилища.
func (a *app) authenticate(c *gin.Context) (*models.User, error) {
	raw, err := token.ExtractBearer(c.GetHeader("Authorization"))
	if err != nil {
		return nil, err
	}
	userID, err := a.tokens.Verify(raw)
	if err != nil {
		return nil, err
	}
	user, err := a.store.UserByID(userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// requireAuth прерывает запрос 401-м при любом сбое аутентификации.
// Сообщения намеренно общие: наружу не уходит, какая именно проверка упала.
func (a *app) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := a.authenticate(c)
		if err != nil {
			message := "Invalid or expired token"
			if errors.Is(err, token.ErrMalformedHeader) {
				message = "Authorization header missing or invalid"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// optionalAuth глотает любые сбои и продолжает запрос анонимно.
func (a *app) optionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := a.authenticate(c); err == nil {
			c.Set(userKey, user)
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// validateBody прогоняет тело по схеме и возвращает тело на место,
// чтобы обработчик мог разобрать его заново.
func validateBody(schema validation.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		payload := map[string]interface{}{}
		if len(body) > 0 {
			if err := json.Unmarshal(body, &payload); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
				return
			}
		}

		if details := schema.Validate(payload); len(details) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":   "Validation error",
				"details": details,
			})
			return
		}
		c.Next()
	}
}
