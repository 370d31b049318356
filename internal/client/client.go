// Package client is a Go consumer of the cockpit API. It wraps every
// endpoint, keeps a read-through cache per entity type, and invalidates the
// affected namespaces on each mutation so reads always refetch canonical
// state instead of merging responses ad hoc.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"todo-cockpit/internal/model"
	"todo-cockpit/internal/stats"
)

// PositionEntry is one element of a reorder submission.
type PositionEntry struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// TodoPositionEntry additionally carries the status group the todo lands in.
type TodoPositionEntry struct {
	ID       string       `json:"id"`
	Position int          `json:"position"`
	Status   model.Status `json:"status"`
}

// TodoDraft carries the fields accepted when creating a todo.
type TodoDraft struct {
	Title       string   `json:"title"`
	DueDate     *string  `json:"dueDate,omitempty"`
	IsImportant bool     `json:"isImportant,omitempty"`
	Status      string   `json:"status,omitempty"`
	CategoryID  string   `json:"categoryId,omitempty"`
	Labels      []string `json:"labels,omitempty"`
}

// Changes is a partial todo update; keys follow the wire field names and a
// nil value is sent as an explicit JSON null.
type Changes map[string]any

// APIError is a non-200 response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client talks to a cockpit server.
type Client struct {
	baseURL string
	httpc   *http.Client
	cache   *cache
}

// New builds a client for the API at baseURL. A nil httpc gets a default
// client with a 10 second timeout.
func New(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		cache:   newCache(),
	}
}

// Categories lists categories ordered by position, served from cache when
// nothing invalidated it since the last read.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	if v, ok := c.cache.get(keyCategories); ok {
		return v.([]model.Category), nil
	}
	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	c.cache.put(keyCategories, categories)
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	if err := c.do(ctx, http.MethodPost, "/api/categories", map[string]string{"name": name}, &category); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyCategories)
	return &category, nil
}

func (c *Client) RenameCategory(ctx context.Context, id, name string) (*model.Category, error) {
	var category model.Category
	if err := c.do(ctx, http.MethodPut, "/api/categories/"+id, map[string]string{"name": name}, &category); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyCategories)
	return &category, nil
}

// DeleteCategory invalidates todos as well: the server detaches every todo
// that referenced the category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/categories/"+id, nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(keyCategories, keyTodos)
	return nil
}

func (c *Client) ReorderCategories(ctx context.Context, entries []PositionEntry) ([]model.Category, error) {
	body := map[string]any{"categories": entries}
	var categories []model.Category
	if err := c.do(ctx, http.MethodPost, "/api/categories/reorder", body, &categories); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyCategories)
	return categories, nil
}

// Todos lists todos for the given filter: nil fetches everything, a pointer
// to the empty string fetches the inbox, anything else one category.
func (c *Client) Todos(ctx context.Context, categoryID *string) ([]model.Todo, error) {
	key, path := todosRequest(categoryID)
	if v, ok := c.cache.get(key); ok {
		return v.([]model.Todo), nil
	}
	var todos []model.Todo
	if err := c.do(ctx, http.MethodGet, path, nil, &todos); err != nil {
		return nil, err
	}
	c.cache.put(key, todos)
	return todos, nil
}

// Stats fetches the aggregate summary for the given filter. Not cached: it
// is cheap and time-dependent.
func (c *Client) Stats(ctx context.Context, categoryID *string) (stats.Summary, error) {
	path := "/api/todos/stats"
	if categoryID != nil {
		path += "?categoryId=" + url.QueryEscape(*categoryID)
	}
	var summary stats.Summary
	if err := c.do(ctx, http.MethodGet, path, nil, &summary); err != nil {
		return stats.Summary{}, err
	}
	return summary, nil
}

func (c *Client) CreateTodo(ctx context.Context, draft TodoDraft) (*model.Todo, error) {
	var todo model.Todo
	if err := c.do(ctx, http.MethodPost, "/api/todos", draft, &todo); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyTodos)
	return &todo, nil
}

func (c *Client) UpdateTodo(ctx context.Context, id string, changes Changes) (*model.Todo, error) {
	var todo model.Todo
	if err := c.do(ctx, http.MethodPut, "/api/todos/"+id, changes, &todo); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyTodos)
	return &todo, nil
}

func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/todos/"+id, nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(keyTodos)
	return nil
}

func (c *Client) ReorderTodos(ctx context.Context, entries []TodoPositionEntry) ([]model.Todo, error) {
	body := map[string]any{"todos": entries}
	var todos []model.Todo
	if err := c.do(ctx, http.MethodPost, "/api/todos/reorder", body, &todos); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyTodos)
	return todos, nil
}

func (c *Client) Labels(ctx context.Context) ([]model.Label, error) {
	if v, ok := c.cache.get(keyLabels); ok {
		return v.([]model.Label), nil
	}
	var labels []model.Label
	if err := c.do(ctx, http.MethodGet, "/api/labels", nil, &labels); err != nil {
		return nil, err
	}
	c.cache.put(keyLabels, labels)
	return labels, nil
}

func (c *Client) CreateLabel(ctx context.Context, name, color string) (*model.Label, error) {
	body := map[string]string{"name": name, "color": color}
	var label model.Label
	if err := c.do(ctx, http.MethodPost, "/api/labels", body, &label); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyLabels)
	return &label, nil
}

func (c *Client) UpdateLabel(ctx context.Context, id string, name, color *string) (*model.Label, error) {
	body := map[string]any{}
	if name != nil {
		body["name"] = *name
	}
	if color != nil {
		body["color"] = *color
	}
	var label model.Label
	if err := c.do(ctx, http.MethodPut, "/api/labels/"+id, body, &label); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyLabels)
	return &label, nil
}

// DeleteLabel invalidates todos as well: the server strips the label id from
// every todo that carried it.
func (c *Client) DeleteLabel(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/labels/"+id, nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(keyLabels, keyTodos)
	return nil
}

func todosRequest(categoryID *string) (cacheKey, path string) {
	if categoryID == nil {
		return keyTodos + ":all", "/api/todos/all"
	}
	if *categoryID == "" {
		return keyTodos + ":inbox", "/api/todos?categoryId="
	}
	return keyTodos + ":category:" + *categoryID, "/api/todos?categoryId=" + url.QueryEscape(*categoryID)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
