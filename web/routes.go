package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhavanishankera7/todo-list-app/internal/token"
	"github.com/bhavanishankera7/todo-list-app/internal/validation"
)

//go:embed static
var staticFiles embed.FS

// NewRouter собирает gin-роутер: API под /api и статику SPA.
func NewRouter(store Store, tokens *token.Service) *gin.Engine {
	a := &app{store: store, tokens: tokens}
	router := gin.Default()

	router.GET("/api/health", a.optionalAuth(), a.health)

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", validateBody(validation.Register), a.register)
		auth.POST("/login", validateBody(validation.Login), a.login)
		auth.GET("/profile", a.requireAuth(), a.profile)
	}

	todos := router.Group("/api/todos")
	todos.Use(a.requireAuth())
	{
		todos.GET("", a.listTodos)
		todos.GET("/:id", a.getTodo)
		todos.POST("", validateBody(validation.CreateTodo), a.createTodo)
		todos.PUT("/:id", validateBody(validation.UpdateTodo), a.updateTodo)
		todos.DELETE("/:id", a.deleteTodo)
		todos.PATCH("/:id/status", a.updateTodoStatus)
	}

	// фронтенд вшит в бинарник
	static, _ := fs.Sub(staticFiles, "static")
	router.StaticFS("/static", http.FS(static))
	router.GET("/", func(c *gin.Context) {
		// "/" вместо "index.html": http.FileServer сам отдаёт индекс,
		// а явный путь index.html он редиректит обратно на "/".
		c.FileFromFS("/", http.FS(static))
	})

	return router
}
