package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createLabelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type updateLabelRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (s *Server) listLabels(c *gin.Context) {
	labels, err := s.labels.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "Label not found", "Failed to fetch labels")
		return
	}
	c.JSON(http.StatusOK, labels)
}

func (s *Server) createLabel(c *gin.Context) {
	var req createLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid label data")
		return
	}

	label, err := s.labels.Create(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		writeError(c, err, "Label not found", "Failed to create label")
		return
	}
	c.JSON(http.StatusOK, label)
}

func (s *Server) updateLabel(c *gin.Context) {
	var req updateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid label data")
		return
	}

	label, err := s.labels.Update(c.Request.Context(), c.Param("id"), req.Name, req.Color)
	if err != nil {
		writeError(c, err, "Label not found", "Failed to update label")
		return
	}
	c.JSON(http.StatusOK, label)
}

func (s *Server) deleteLabel(c *gin.Context) {
	if err := s.labels.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Label not found", "Failed to delete label")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
