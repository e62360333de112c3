package infrastructure

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/gorm"
	"weathertodo.app/internal/ports"
)

// DatabaseHealthChecker pings the gorm connection pool
type DatabaseHealthChecker struct {
	db *gorm.DB
}

// NewDatabaseHealthChecker creates a new database health checker
func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

// Check verifies database connectivity
func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Details:   make(map[string]interface{}),
	}

	if d.db == nil {
		status.Status = "unhealthy"
		status.Error = "database instance is nil"
		return status
	}
	status.Details["driver"] = d.db.Dialector.Name()

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Status = "unhealthy"
		status.Error = "failed to get underlying database connection"
		return status
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
		return status
	}

	stats := sqlDB.Stats()
	status.Status = "healthy"
	status.Details["connected"] = true
	status.Details["open_connections"] = stats.OpenConnections
	return status
}

// MongoHealthChecker pings the primary of the todo document store
type MongoHealthChecker struct {
	client *mongo.Client
}

// NewMongoHealthChecker creates a health checker for client
func NewMongoHealthChecker(client *mongo.Client) *MongoHealthChecker {
	return &MongoHealthChecker{client: client}
}

func (m *MongoHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "mongodb",
		Details:   map[string]interface{}{"connected": false},
	}

	if m.client == nil {
		status.Status = "unhealthy"
		status.Error = "mongo client is nil"
		return status
	}

	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
		return status
	}

	status.Status = "healthy"
	status.Details["connected"] = true
	return status
}
