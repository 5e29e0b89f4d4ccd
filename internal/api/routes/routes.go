package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sinclqir/jobazur-document-service/internal/api/handlers"
	"github.com/Sinclqir/jobazur-document-service/internal/api/middleware"
)

type Deps struct {
	Documents *handlers.DocumentHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Protected routes (JWT, or the DISABLE_AUTH dev bypass)
	auth := r.Group("/")
	auth.Use(middleware.Auth())

	auth.GET("/user/:userId", d.Documents.ListForUser)
	auth.GET("/user/:userId/cv", d.Documents.GetCV)
	auth.POST("/upload", d.Documents.Upload)
	auth.DELETE("/:id", d.Documents.Delete)
	auth.GET("/:id/download", d.Documents.Download)
}
