package external

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

const todoCollection = "todos"

// mongoTodo is the stored shape of a todo document
type mongoTodo struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Title     string    `bson:"title"`
	Details   string    `bson:"details,omitempty"`
	Status    string    `bson:"status"`
	Priority  string    `bson:"priority,omitempty"`
	Category  string    `bson:"category,omitempty"`
	Date      time.Time `bson:"date"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoTodoRepositoryAdapter implements the TodoRepository port on MongoDB
type MongoTodoRepositoryAdapter struct {
	collection *mongo.Collection
}

// NewMongoTodoRepositoryAdapter creates a repository over the todos collection of db
func NewMongoTodoRepositoryAdapter(db *mongo.Database) *MongoTodoRepositoryAdapter {
	return &MongoTodoRepositoryAdapter{collection: db.Collection(todoCollection)}
}

// ConnectMongo opens a client and verifies the connection
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.NewDatabaseError("failed to connect to MongoDB", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.NewDatabaseError("failed to ping MongoDB", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes list queries rely on
func (r *MongoTodoRepositoryAdapter) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
	})
	if err != nil {
		return errors.NewDatabaseError("failed to create todo indexes", err)
	}
	return nil
}

// Create inserts a new todo document
func (r *MongoTodoRepositoryAdapter) Create(ctx context.Context, todo *ports.TodoData) error {
	if todo == nil {
		return errors.NewValidationError("todo cannot be nil")
	}
	if todo.ID == "" {
		return errors.NewValidationError("todo ID cannot be empty")
	}

	now := time.Now().UTC()
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = now
	}
	todo.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, toMongoTodo(todo)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.NewAlreadyExistsError("todo already exists")
		}
		return errors.NewDatabaseError("failed to create todo", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing todo
func (r *MongoTodoRepositoryAdapter) Update(ctx context.Context, todo *ports.TodoData) error {
	if todo == nil {
		return errors.NewValidationError("todo cannot be nil")
	}
	if todo.ID == "" {
		return errors.NewValidationError("todo ID cannot be empty for update")
	}

	todo.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"title":      todo.Title,
		"details":    todo.Details,
		"status":     todo.Status,
		"priority":   todo.Priority,
		"category":   todo.Category,
		"date":       todo.Date.UTC(),
		"updated_at": todo.UpdatedAt,
	}}

	result, err := r.collection.UpdateByID(ctx, todo.ID, update)
	if err != nil {
		return errors.NewDatabaseError("failed to update todo", err)
	}
	if result.MatchedCount == 0 {
		return errors.NewNotFoundError("todo not found")
	}
	return nil
}

// Get retrieves a todo by its ID
func (r *MongoTodoRepositoryAdapter) Get(ctx context.Context, id string) (*ports.TodoData, error) {
	if id == "" {
		return nil, errors.NewValidationError("todo ID cannot be empty")
	}

	var doc mongoTodo
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NewNotFoundError("todo not found")
		}
		return nil, errors.NewDatabaseError("failed to find todo", err)
	}
	return doc.toData(), nil
}

// Delete removes a todo document
func (r *MongoTodoRepositoryAdapter) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("todo ID cannot be empty for delete")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.NewDatabaseError("failed to delete todo", err)
	}
	if result.DeletedCount == 0 {
		return errors.NewNotFoundError("todo not found")
	}
	return nil
}

// List returns todos matching filter ordered by date, together with the
// number of matches before the limit is applied
func (r *MongoTodoRepositoryAdapter) List(ctx context.Context, filter ports.TodoFilter) ([]*ports.TodoData, int64, error) {
	query := BuildTodoFilter(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.NewDatabaseError("failed to count todos", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.NewDatabaseError("failed to list todos", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoTodo
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, errors.NewDatabaseError("failed to decode todos", err)
	}

	todos := make([]*ports.TodoData, len(docs))
	for i := range docs {
		todos[i] = docs[i].toData()
	}
	return todos, total, nil
}

// BuildTodoFilter translates a TodoFilter into a MongoDB query document.
// All date conditions are ANDed, as in the SQL store.
func BuildTodoFilter(filter ports.TodoFilter) bson.M {
	query := bson.M{}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	dateRange := bson.M{}
	if filter.Date != nil {
		dateRange["$eq"] = filter.Date.UTC()
	}
	if filter.DateFrom != nil {
		dateRange["$gte"] = filter.DateFrom.UTC()
	}
	if filter.DateTo != nil {
		dateRange["$lte"] = filter.DateTo.UTC()
	}
	if filter.DateBefore != nil {
		dateRange["$lt"] = filter.DateBefore.UTC()
	}
	switch {
	case len(dateRange) == 1 && filter.Date != nil:
		query["date"] = filter.Date.UTC()
	case len(dateRange) > 0:
		query["date"] = dateRange
	}
	return query
}

func toMongoTodo(data *ports.TodoData) mongoTodo {
	return mongoTodo{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Details:   data.Details,
		Status:    data.Status,
		Priority:  data.Priority,
		Category:  data.Category,
		Date:      data.Date.UTC(),
		CreatedAt: data.CreatedAt.UTC(),
		UpdatedAt: data.UpdatedAt.UTC(),
	}
}

func (d mongoTodo) toData() *ports.TodoData {
	return &ports.TodoData{
		ID:        d.ID,
		UserID:    d.UserID,
		Title:     d.Title,
		Details:   d.Details,
		Status:    d.Status,
		Priority:  d.Priority,
		Category:  d.Category,
		Date:      d.Date.UTC(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
