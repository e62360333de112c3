package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

// TodoModel represents the database model for todo documents
type TodoModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"index;not null"`
	Title     string `gorm:"not null"`
	Details   string
	Status    string `gorm:"index;not null"`
	Priority  string
	Category  string
	Date      time.Time `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TodoModel) TableName() string {
	return "todos"
}

// TodoRepositoryAdapter implements the TodoRepository port using GORM
type TodoRepositoryAdapter struct {
	db *gorm.DB
}

// NewTodoRepositoryAdapter creates a new todo repository adapter
func NewTodoRepositoryAdapter(db *gorm.DB) ports.TodoRepository {
	return &TodoRepositoryAdapter{db: db}
}

// Create inserts a new todo document
func (r *TodoRepositoryAdapter) Create(ctx context.Context, todo *ports.TodoData) error {
	if todo == nil {
		return errors.NewValidationError("todo cannot be nil")
	}
	if todo.ID == "" {
		return errors.NewValidationError("todo ID cannot be empty")
	}

	model := r.dataToModel(todo)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewDatabaseError("failed to create todo", err)
	}

	todo.CreatedAt = model.CreatedAt
	todo.UpdatedAt = model.UpdatedAt
	return nil
}

// Update replaces the mutable fields of an existing todo
func (r *TodoRepositoryAdapter) Update(ctx context.Context, todo *ports.TodoData) error {
	if todo == nil {
		return errors.NewValidationError("todo cannot be nil")
	}
	if todo.ID == "" {
		return errors.NewValidationError("todo ID cannot be empty for update")
	}

	updatedAt := time.Now()
	result := r.db.WithContext(ctx).Model(&TodoModel{}).Where("id = ?", todo.ID).Updates(map[string]interface{}{
		"title":      todo.Title,
		"details":    todo.Details,
		"status":     todo.Status,
		"priority":   todo.Priority,
		"category":   todo.Category,
		"date":       todo.Date,
		"updated_at": updatedAt,
	})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to update todo", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("todo not found")
	}

	todo.UpdatedAt = updatedAt
	return nil
}

// Get retrieves a todo by its ID
func (r *TodoRepositoryAdapter) Get(ctx context.Context, id string) (*ports.TodoData, error) {
	if id == "" {
		return nil, errors.NewValidationError("todo ID cannot be empty")
	}

	var model TodoModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("todo not found")
		}
		return nil, errors.NewDatabaseError("failed to find todo", result.Error)
	}

	return r.modelToData(&model), nil
}

// Delete removes a todo from the database
func (r *TodoRepositoryAdapter) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("todo ID cannot be empty for delete")
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TodoModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete todo", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("todo not found")
	}

	return nil
}

// List returns todos matching filter ordered by date, together with the
// number of matches before the limit is applied
func (r *TodoRepositoryAdapter) List(ctx context.Context, filter ports.TodoFilter) ([]*ports.TodoData, int64, error) {
	var total int64
	countQuery := r.applyFilter(r.db.WithContext(ctx).Model(&TodoModel{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, errors.NewDatabaseError("failed to count todos", err)
	}

	var models []TodoModel
	listQuery := r.applyFilter(r.db.WithContext(ctx), filter).Order("date ASC").Order("created_at ASC")
	if filter.Limit > 0 {
		listQuery = listQuery.Limit(filter.Limit)
	}
	if err := listQuery.Find(&models).Error; err != nil {
		return nil, 0, errors.NewDatabaseError("failed to list todos", err)
	}

	todos := make([]*ports.TodoData, len(models))
	for i := range models {
		todos[i] = r.modelToData(&models[i])
	}

	return todos, total, nil
}

func (r *TodoRepositoryAdapter) applyFilter(query *gorm.DB, filter ports.TodoFilter) *gorm.DB {
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Date != nil {
		query = query.Where("date = ?", filter.Date.UTC())
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", filter.DateFrom.UTC())
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", filter.DateTo.UTC())
	}
	if filter.DateBefore != nil {
		query = query.Where("date < ?", filter.DateBefore.UTC())
	}
	return query
}

// dataToModel converts port data to database model
func (r *TodoRepositoryAdapter) dataToModel(data *ports.TodoData) *TodoModel {
	return &TodoModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Details:   data.Details,
		Status:    data.Status,
		Priority:  data.Priority,
		Category:  data.Category,
		Date:      data.Date.UTC(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// modelToData converts database model to port data
func (r *TodoRepositoryAdapter) modelToData(model *TodoModel) *ports.TodoData {
	return &ports.TodoData{
		ID:        model.ID,
		UserID:    model.UserID,
		Title:     model.Title,
		Details:   model.Details,
		Status:    model.Status,
		Priority:  model.Priority,
		Category:  model.Category,
		Date:      model.Date.UTC(),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
