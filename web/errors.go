package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// storeError — сбой хранилища: лог + 500 с текстом исходной ошибки.
func storeError(c *gin.Context, what string, err error) {
	log.Printf("%s: %v", what, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   what,
		"message": err.Error(),
	})
}

func todoNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
}

func badRequestBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}
