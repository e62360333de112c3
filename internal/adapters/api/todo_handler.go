package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weathertodo.app/internal/core/todo"
	"weathertodo.app/pkg/errors"
	"weathertodo.app/pkg/validation"
)

// CreateTodoRequest represents the HTTP request for creating a todo.
// Title and date are checked by the use case so its messages reach the client.
type CreateTodoRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Title    string `json:"title"`
	Details  string `json:"details"`
	Status   string `json:"status" binding:"omitempty,todo_status"`
	Priority string `json:"priority" binding:"omitempty,todo_priority"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

// UpdateTodoRequest carries only the fields to change
type UpdateTodoRequest struct {
	Title    *string `json:"title"`
	Details  *string `json:"details"`
	Status   *string `json:"status" binding:"omitempty,todo_status"`
	Priority *string `json:"priority" binding:"omitempty,todo_priority"`
	Category *string `json:"category"`
	Date     *string `json:"date" binding:"omitempty,date_key"`
}

// ToggleTodoRequest flips one todo within the list shown for a date
type ToggleTodoRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Date   string `json:"date" binding:"required,date_key"`
	ID     string `json:"id" binding:"required"`
}

// TodoResponse represents a todo in HTTP responses
type TodoResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Details   string    `json:"details,omitempty"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority,omitempty"`
	Category  string    `json:"category,omitempty"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TodoListResponse is a page of todos plus the unlimited total
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Total int64          `json:"total"`
}

// ToggleTodoResponse returns the confirmed todo and the list after the toggle
type ToggleTodoResponse struct {
	Todo  TodoResponse   `json:"todo"`
	Items []TodoResponse `json:"items"`
}

func newTodoResponse(t *todo.Todo) TodoResponse {
	resp := TodoResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Title:     t.Title,
		Details:   t.Details,
		Status:    t.Status.String(),
		Category:  t.Category,
		Date:      t.DateKey(),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Priority.IsValid() {
		resp.Priority = t.Priority.String()
	}
	return resp
}

func newTodoResponses(todos []*todo.Todo) []TodoResponse {
	items := make([]TodoResponse, 0, len(todos))
	for _, t := range todos {
		items = append(items, newTodoResponse(t))
	}
	return items
}

// createTodo handles POST /api/todos requests
func (s *HTTPServerAdapter) createTodo(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	params := todo.CreateParams{
		Title:    req.Title,
		Details:  req.Details,
		Status:   todo.StatusFromString(req.Status),
		Priority: todo.PriorityFromString(req.Priority),
		Category: req.Category,
	}
	if strings.TrimSpace(req.Date) != "" {
		date, err := todo.ParseDate(req.Date)
		if err != nil {
			s.handleError(c, errors.NewValidationError(err.Error()))
			return
		}
		params.Date = date
	}

	created, err := s.todoUseCase.Create(c.Request.Context(), req.UserID, params)
	if err != nil {
		slog.Error("Create todo error", "error", err, "user_id", req.UserID)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTodoResponse(created))
}

// listTodos handles GET /api/todos requests
func (s *HTTPServerAdapter) listTodos(c *gin.Context) {
	params := todo.ListParams{
		UserID: c.Query("user_id"),
		Status: todo.StatusFromString(c.Query("status")),
	}

	if raw := c.Query("status"); raw != "" && !params.Status.IsValid() {
		s.handleError(c, errors.NewValidationError("status must be pending or completed"))
		return
	}

	dateParams := []struct {
		name   string
		target **time.Time
	}{
		{"date", &params.Date},
		{"start", &params.Start},
		{"end", &params.End},
	}
	for _, p := range dateParams {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		parsed, err := todo.ParseDate(raw)
		if err != nil {
			s.handleError(c, errors.NewValidationError(p.name+": "+err.Error()))
			return
		}
		*p.target = &parsed
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			s.handleError(c, errors.NewValidationError("limit must be a non-negative integer"))
			return
		}
		params.Limit = limit
	}

	todos, total, err := s.todoUseCase.List(c.Request.Context(), params)
	if err != nil {
		slog.Error("List todos error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, TodoListResponse{Todos: newTodoResponses(todos), Total: total})
}

// getTodo handles GET /api/todos/:id requests
func (s *HTTPServerAdapter) getTodo(c *gin.Context) {
	found, err := s.todoUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTodoResponse(found))
}

// updateTodo handles PUT /api/todos/:id requests
func (s *HTTPServerAdapter) updateTodo(c *gin.Context) {
	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	params := todo.UpdateParams{
		Title:    req.Title,
		Details:  req.Details,
		Category: req.Category,
	}
	if req.Status != nil {
		status := todo.StatusFromString(*req.Status)
		params.Status = &status
	}
	if req.Priority != nil {
		priority := todo.PriorityFromString(*req.Priority)
		params.Priority = &priority
	}
	if req.Date != nil {
		date, err := time.Parse(validation.DateLayout, strings.TrimSpace(*req.Date))
		if err != nil {
			s.handleError(c, errors.NewValidationError("date must be YYYY-MM-DD"))
			return
		}
		params.Date = &date
	}

	updated, err := s.todoUseCase.Update(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		slog.Error("Update todo error", "error", err, "id", c.Param("id"))
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTodoResponse(updated))
}

// deleteTodo handles DELETE /api/todos/:id requests
func (s *HTTPServerAdapter) deleteTodo(c *gin.Context) {
	if err := s.todoUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		slog.Error("Delete todo error", "error", err, "id", c.Param("id"))
		s.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// toggleTodo handles POST /api/todos/toggle requests
func (s *HTTPServerAdapter) toggleTodo(c *gin.Context) {
	var req ToggleTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	date, err := time.Parse(validation.DateLayout, req.Date)
	if err != nil {
		s.handleError(c, errors.NewValidationError("date must be YYYY-MM-DD"))
		return
	}

	ctx := c.Request.Context()
	todos, err := s.todoUseCase.ListByDate(ctx, req.UserID, date)
	if err != nil {
		s.handleError(c, err)
		return
	}

	view := todo.NewListView(todos)
	updated, err := s.todoUseCase.ToggleStatus(ctx, view, req.ID)
	if err != nil {
		slog.Error("Toggle todo error", "error", err, "id", req.ID)
		s.handleError(c, err)
		return
	}

	items := view.Items()
	responses := make([]TodoResponse, 0, len(items))
	for i := range items {
		responses = append(responses, newTodoResponse(&items[i]))
	}

	c.JSON(http.StatusOK, ToggleTodoResponse{Todo: newTodoResponse(updated), Items: responses})
}
