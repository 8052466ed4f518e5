package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/drivesense/drivesense-backend/internal/pkg/models"
)

// MongoClient represents a MongoDB client
type MongoClient struct {
	client   *mongo.Client
	database string
}

// NewMongoClient creates a new MongoDB client and verifies connectivity.
func NewMongoClient(config models.MongoConfig) (*MongoClient, error) {
	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoClient{client: client, database: config.Database}, nil
}

// Database returns the configured database handle.
func (m *MongoClient) Database() *mongo.Database {
	return m.client.Database(m.database)
}

// Close disconnects the client.
func (m *MongoClient) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
