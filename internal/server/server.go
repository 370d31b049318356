// Package server exposes the cockpit REST API over gin. Handlers translate
// JSON requests into service calls and map the service error taxonomy onto
// HTTP statuses: validation 400, missing records 404, anything else 500.
package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-cockpit/internal/service"
)

// Server bundles the API services behind a gin router.
type Server struct {
	categories *service.CategoryService
	labels     *service.LabelService
	todos      *service.TodoService
	router     *gin.Engine
}

func New(categories *service.CategoryService, labels *service.LabelService, todos *service.TodoService) *Server {
	s := &Server{
		categories: categories,
		labels:     labels,
		todos:      todos,
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/categories", s.listCategories)
		api.POST("/categories", s.createCategory)
		api.PUT("/categories/:id", s.updateCategory)
		api.DELETE("/categories/:id", s.deleteCategory)
		api.POST("/categories/reorder", s.reorderCategories)

		api.GET("/labels", s.listLabels)
		api.POST("/labels", s.createLabel)
		api.PUT("/labels/:id", s.updateLabel)
		api.DELETE("/labels/:id", s.deleteLabel)

		api.GET("/todos", s.listTodos)
		api.GET("/todos/all", s.listAllTodos)
		api.GET("/todos/stats", s.todoStats)
		api.POST("/todos", s.createTodo)
		api.PUT("/todos/:id", s.updateTodo)
		api.DELETE("/todos/:id", s.deleteTodo)
		api.POST("/todos/reorder", s.reorderTodos)
	}

	s.router = router
	return s
}

// Handler returns the router for mounting into an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// writeError maps a service error onto the wire format. notFoundMsg and
// failMsg keep the original client-facing wording per endpoint; the concrete
// failure is only logged.
func writeError(c *gin.Context, err error, notFoundMsg, failMsg string) {
	switch {
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		log.Printf("%s: %v", failMsg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
