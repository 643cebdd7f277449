package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/stockdesk/internal/config"
	"github.com/mamadbah2/stockdesk/internal/domain/models"
)

const snapshotCollection = "low_stock_snapshots"

// Repository defines the interface for low-stock snapshot storage.
type Repository interface {
	SaveLowStockSnapshot(ctx context.Context, snapshot models.LowStockSnapshot) error
}

// MongoDBRepository implements the Repository interface for MongoDB. Its
// database also backs the mongo session store.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository connects to MongoDB and verifies the connection.
func NewMongoDBRepository(ctx context.Context, cfg config.MongoDBConfig) (*MongoDBRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   cfg.DBName,
		collName: snapshotCollection,
	}, nil
}

// Database returns the application database.
func (r *MongoDBRepository) Database() *mongo.Database {
	return r.client.Database(r.dbName)
}

// SaveLowStockSnapshot stores the outcome of a sweep.
func (r *MongoDBRepository) SaveLowStockSnapshot(ctx context.Context, snapshot models.LowStockSnapshot) error {
	if _, err := r.Database().Collection(r.collName).InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert low-stock snapshot: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
