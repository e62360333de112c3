package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

// KeyValueModel represents a persisted JSON blob
type KeyValueModel struct {
	Key       string `gorm:"column:storage_key;primaryKey;size:255"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (KeyValueModel) TableName() string {
	return "key_values"
}

// KeyValueRepositoryAdapter implements the KeyValueStore port using GORM
type KeyValueRepositoryAdapter struct {
	db *gorm.DB
}

// NewKeyValueRepositoryAdapter creates a new key-value repository adapter
func NewKeyValueRepositoryAdapter(db *gorm.DB) ports.KeyValueStore {
	return &KeyValueRepositoryAdapter{db: db}
}

// Get retrieves the value stored under key
func (r *KeyValueRepositoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("key cannot be empty")
	}

	var model KeyValueModel
	result := r.db.WithContext(ctx).Where("storage_key = ?", key).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("key not found")
		}
		return nil, errors.NewDatabaseError("failed to read key", result.Error)
	}

	return model.Value, nil
}

// Set stores value under key, replacing any previous value
func (r *KeyValueRepositoryAdapter) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.NewValidationError("key cannot be empty")
	}

	model := &KeyValueModel{Key: key, Value: value, UpdatedAt: time.Now()}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to write key", result.Error)
	}

	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (r *KeyValueRepositoryAdapter) Remove(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("key cannot be empty")
	}

	if err := r.db.WithContext(ctx).Where("storage_key = ?", key).Delete(&KeyValueModel{}).Error; err != nil {
		return errors.NewDatabaseError("failed to remove key", err)
	}
	return nil
}

// Clear deletes every stored key
func (r *KeyValueRepositoryAdapter) Clear(ctx context.Context) error {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&KeyValueModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to clear keys", result.Error)
	}
	return nil
}
