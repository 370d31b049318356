package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-cockpit/internal/repository"
)

type createCategoryRequest struct {
	Name string `json:"name"`
}

type updateCategoryRequest struct {
	Name *string `json:"name"`
}

type positionEntry struct {
	ID       string `json:"id"`
	Position *int   `json:"position"`
}

type reorderCategoriesRequest struct {
	Categories []positionEntry `json:"categories"`
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.categories.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "Category not found", "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) createCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid category name")
		return
	}

	category, err := s.categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err, "Category not found", "Failed to create category")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (s *Server) updateCategory(c *gin.Context) {
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid category name")
		return
	}

	category, err := s.categories.Update(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		writeError(c, err, "Category not found", "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (s *Server) deleteCategory(c *gin.Context) {
	if err := s.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Category not found", "Failed to delete category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) reorderCategories(c *gin.Context) {
	var req reorderCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid categories data")
		return
	}

	updates := make([]repository.PositionUpdate, len(req.Categories))
	for i, entry := range req.Categories {
		if entry.ID == "" || entry.Position == nil {
			badRequest(c, "Invalid category format - each category must have an id and position")
			return
		}
		updates[i] = repository.PositionUpdate{ID: entry.ID, Position: *entry.Position}
	}

	categories, err := s.categories.Reorder(c.Request.Context(), updates)
	if err != nil {
		writeError(c, err, "One or more categories could not be found", "Failed to reorder categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}
