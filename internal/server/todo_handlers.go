package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todo-cockpit/internal/model"
	"todo-cockpit/internal/repository"
	"todo-cockpit/internal/service"
)

type createTodoRequest struct {
	Title       string   `json:"title"`
	DueDate     *string  `json:"dueDate"`
	IsImportant bool     `json:"isImportant"`
	Status      string   `json:"status"`
	CategoryID  string   `json:"categoryId"`
	Labels      []string `json:"labels"`
}

type updateTodoRequest struct {
	Title       *string   `json:"title"`
	DueDate     *string   `json:"dueDate"`
	IsImportant *bool     `json:"isImportant"`
	Status      *string   `json:"status"`
	CategoryID  *string   `json:"categoryId"`
	Labels      *[]string `json:"labels"`
	Position    *int      `json:"position"`
}

type todoPositionEntry struct {
	ID       string `json:"id"`
	Position *int   `json:"position"`
	Status   string `json:"status"`
}

type reorderTodosRequest struct {
	Todos []todoPositionEntry `json:"todos"`
}

// parseDueDate accepts RFC 3339 timestamps and bare dates.
func parseDueDate(raw string) (*time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// categoryFilter reads the tri-state categoryId query parameter: absent means
// all todos, empty string means the inbox, anything else a concrete category.
func categoryFilter(c *gin.Context) service.TodoFilter {
	query := c.Request.URL.Query()
	if !query.Has("categoryId") {
		return service.TodoFilter{}
	}
	value := query.Get("categoryId")
	return service.TodoFilter{CategoryID: &value}
}

func (s *Server) listTodos(c *gin.Context) {
	todos, err := s.todos.List(c.Request.Context(), categoryFilter(c))
	if err != nil {
		writeError(c, err, "Todo not found", "Failed to fetch todos")
		return
	}
	c.JSON(http.StatusOK, todos)
}

func (s *Server) listAllTodos(c *gin.Context) {
	todos, err := s.todos.List(c.Request.Context(), service.TodoFilter{})
	if err != nil {
		writeError(c, err, "Todo not found", "Failed to fetch all todos")
		return
	}
	c.JSON(http.StatusOK, todos)
}

func (s *Server) todoStats(c *gin.Context) {
	summary, err := s.todos.Stats(c.Request.Context(), categoryFilter(c), time.Now())
	if err != nil {
		writeError(c, err, "Todo not found", "Failed to fetch todo statistics")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) createTodo(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid todo data")
		return
	}

	input := service.TodoInput{
		Title:       req.Title,
		IsImportant: req.IsImportant,
		Status:      model.Status(req.Status),
		CategoryID:  req.CategoryID,
		Labels:      req.Labels,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := parseDueDate(*req.DueDate)
		if err != nil {
			badRequest(c, "Invalid due date")
			return
		}
		input.DueDate = due
	}

	todo, err := s.todos.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err, "Referenced record not found", "Failed to create todo")
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (s *Server) updateTodo(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, "Invalid todo data")
		return
	}

	// Field presence matters for partial updates: an explicit null dueDate
	// clears it, an absent one leaves it alone. Decode the raw keys first.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		badRequest(c, "Invalid todo data")
		return
	}
	var req updateTodoRequest
	if err := json.Unmarshal(body, &req); err != nil {
		badRequest(c, "Invalid todo data")
		return
	}

	patch := service.TodoPatch{
		Title:       req.Title,
		IsImportant: req.IsImportant,
		Position:    req.Position,
		Labels:      req.Labels,
	}
	if req.Status != nil {
		status := model.Status(*req.Status)
		patch.Status = &status
	}
	if _, ok := fields["dueDate"]; ok {
		switch {
		case req.DueDate == nil || *req.DueDate == "":
			patch.ClearDueDate = true
		default:
			due, err := parseDueDate(*req.DueDate)
			if err != nil {
				badRequest(c, "Invalid due date")
				return
			}
			patch.DueDate = due
		}
	}
	if _, ok := fields["categoryId"]; ok {
		if req.CategoryID == nil {
			empty := ""
			patch.CategoryID = &empty
		} else {
			patch.CategoryID = req.CategoryID
		}
	}

	todo, err := s.todos.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err, "Todo not found", "Failed to update todo")
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (s *Server) deleteTodo(c *gin.Context) {
	if err := s.todos.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Todo not found", "Failed to delete todo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) reorderTodos(c *gin.Context) {
	var req reorderTodosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid todos data")
		return
	}

	updates := make([]repository.TodoPositionUpdate, len(req.Todos))
	for i, entry := range req.Todos {
		if entry.ID == "" || entry.Position == nil || !model.Status(entry.Status).Valid() {
			badRequest(c, "Invalid todo format - each todo must have an id, position, and status")
			return
		}
		updates[i] = repository.TodoPositionUpdate{
			ID:       entry.ID,
			Position: *entry.Position,
			Status:   model.Status(entry.Status),
		}
	}

	todos, err := s.todos.Reorder(c.Request.Context(), updates)
	if err != nil {
		writeError(c, err, "One or more todos could not be found", "Failed to reorder todos")
		return
	}
	c.JSON(http.StatusOK, todos)
}
