package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

// WeatherRecordModel represents one persisted day of weather for a location
type WeatherRecordModel struct {
	ID            uint    `gorm:"primaryKey"`
	Date          string  `gorm:"size:10;not null;uniqueIndex:idx_weather_day"`
	Latitude      float64 `gorm:"not null;uniqueIndex:idx_weather_day"`
	Longitude     float64 `gorm:"not null;uniqueIndex:idx_weather_day"`
	TempMax       float64
	TempMin       float64
	Precipitation float64
	WeatherCode   int
	LastUpdated   time.Time
}

func (WeatherRecordModel) TableName() string {
	return "weather_records"
}

// WeatherRecordRepositoryAdapter implements the WeatherRecordRepository port using GORM
type WeatherRecordRepositoryAdapter struct {
	db *gorm.DB
}

// NewWeatherRecordRepositoryAdapter creates a new weather record repository adapter
func NewWeatherRecordRepositoryAdapter(db *gorm.DB) ports.WeatherRecordRepository {
	return &WeatherRecordRepositoryAdapter{db: db}
}

// Save creates the record or updates the stored one for the same date and
// location. The stored row is only rewritten when a weather value differs.
func (r *WeatherRecordRepositoryAdapter) Save(ctx context.Context, record *ports.WeatherRecord) (bool, error) {
	if record == nil {
		return false, errors.NewValidationError("weather record cannot be nil")
	}
	if record.Date == "" {
		return false, errors.NewValidationError("weather record date cannot be empty")
	}

	var existing WeatherRecordModel
	result := r.db.WithContext(ctx).
		Where("date = ? AND latitude = ? AND longitude = ?", record.Date, record.Latitude, record.Longitude).
		First(&existing)

	if result.Error == gorm.ErrRecordNotFound {
		model := r.dataToModel(record)
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return false, errors.NewDatabaseError("failed to save weather record", err)
		}
		record.ID = model.ID
		return true, nil
	}
	if result.Error != nil {
		return false, errors.NewDatabaseError("failed to find weather record", result.Error)
	}

	record.ID = existing.ID
	if !weatherChanged(&existing, record) {
		return false, nil
	}

	model := r.dataToModel(record)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return false, errors.NewDatabaseError("failed to update weather record", err)
	}
	return true, nil
}

// FindByDate retrieves the stored day for a location
func (r *WeatherRecordRepositoryAdapter) FindByDate(ctx context.Context, date string, coords ports.Coordinates) (*ports.WeatherRecord, error) {
	if date == "" {
		return nil, errors.NewValidationError("date cannot be empty")
	}

	var model WeatherRecordModel
	result := r.db.WithContext(ctx).
		Where("date = ? AND latitude = ? AND longitude = ?", date, coords.Latitude, coords.Longitude).
		First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("weather record not found")
		}
		return nil, errors.NewDatabaseError("failed to find weather record", result.Error)
	}

	return r.modelToData(&model), nil
}

// FindRange retrieves stored days for a location within [startDate, endDate]
func (r *WeatherRecordRepositoryAdapter) FindRange(ctx context.Context, startDate, endDate string, coords ports.Coordinates) ([]*ports.WeatherRecord, error) {
	if startDate == "" || endDate == "" {
		return nil, errors.NewValidationError("date range cannot be empty")
	}

	var models []WeatherRecordModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ? AND latitude = ? AND longitude = ?", startDate, endDate, coords.Latitude, coords.Longitude).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to find weather records", result.Error)
	}

	records := make([]*ports.WeatherRecord, len(models))
	for i := range models {
		records[i] = r.modelToData(&models[i])
	}
	return records, nil
}

func weatherChanged(existing *WeatherRecordModel, record *ports.WeatherRecord) bool {
	return existing.TempMax != record.TempMax ||
		existing.TempMin != record.TempMin ||
		existing.Precipitation != record.Precipitation ||
		existing.WeatherCode != record.WeatherCode
}

// dataToModel converts port data to database model
func (r *WeatherRecordRepositoryAdapter) dataToModel(data *ports.WeatherRecord) *WeatherRecordModel {
	lastUpdated := data.LastUpdated
	if lastUpdated.IsZero() {
		lastUpdated = time.Now()
	}
	return &WeatherRecordModel{
		ID:            data.ID,
		Date:          data.Date,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		TempMax:       data.TempMax,
		TempMin:       data.TempMin,
		Precipitation: data.Precipitation,
		WeatherCode:   data.WeatherCode,
		LastUpdated:   lastUpdated,
	}
}

// modelToData converts database model to port data
func (r *WeatherRecordRepositoryAdapter) modelToData(model *WeatherRecordModel) *ports.WeatherRecord {
	return &ports.WeatherRecord{
		ID:            model.ID,
		Date:          model.Date,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		TempMax:       model.TempMax,
		TempMin:       model.TempMin,
		Precipitation: model.Precipitation,
		WeatherCode:   model.WeatherCode,
		LastUpdated:   model.LastUpdated,
	}
}
