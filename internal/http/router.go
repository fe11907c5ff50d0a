package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	if len(cfg.AllowedOrigins) > 0 {
		router.Use(CORSMiddleware(cfg.AllowedOrigins))
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, SuccessResponse{Message: "pong"})
	})

	api := router.Group("/api")

	users := NewUsersController(cfg.Handler, cfg.AuditRecorder)
	api.POST("/users", users.CreateUser)
	api.GET("/users/:id", users.GetUser)
	api.PATCH("/users/:id", users.UpdateUser)
	api.DELETE("/users/:id", users.DeleteUser)

	groups := NewGroupsController(cfg.Handler, cfg.AuditRecorder)
	api.POST("/groups", groups.CreateGroup)
	api.GET("/groups/:id", groups.GetGroup)
	api.PATCH("/groups/:id", groups.UpdateGroup)
	api.DELETE("/groups/:id", groups.DeleteGroup)

	decks := NewDecksController(cfg.Handler, cfg.AuditRecorder)
	api.POST("/decks", decks.CreateDeck)
	api.GET("/decks/:id", decks.GetDeck)
	api.PATCH("/decks/:id", decks.UpdateDeck)
	api.DELETE("/decks/:id", decks.DeleteDeck)

	flashcards := NewFlashcardsController(cfg.Handler, cfg.AuditRecorder)
	api.POST("/flashcards", flashcards.CreateFlashcard)
	api.GET("/flashcards/:id", flashcards.GetFlashcard)
	api.PATCH("/flashcards/:id", flashcards.UpdateFlashcard)
	api.DELETE("/flashcards/:id", flashcards.DeleteFlashcard)

	if cfg.AuditReader != nil {
		auditController := NewAuditController(cfg.AuditReader)
		api.GET("/audit", auditController.GetAuditEvents)
		api.GET("/audit/:entity/:id", auditController.GetEntityHistory)
	}

	return router
}
