package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/nani454554/portfolio/internal/config"
)

// Client wraps the MongoDB connection and the portfolio database handle
type Client struct {
	client   *mongo.Client
	database *mongo.Database
	log      *zap.Logger
}

// NewClient connects to MongoDB and verifies the connection
func NewClient(ctx context.Context, config *config.Mongo, log *zap.Logger) (*Client, error) {
	log.Info("Connecting to MongoDB",
		zap.String("database", config.Database),
		zap.Int("connect_timeout_sec", config.ConnectTimeoutSec))

	timeout := time.Duration(config.ConnectTimeoutSec) * time.Second

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(config.URL).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout))
	if err != nil {
		log.Error("Failed to connect to MongoDB", zap.Error(err))
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Error("Failed to ping MongoDB", zap.Error(err))
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info("MongoDB connection established successfully")

	return &Client{
		client:   client,
		database: client.Database(config.Database),
		log:      log,
	}, nil
}

// Collection returns a handle to the named collection
func (c *Client) Collection(name string) *mongo.Collection {
	return c.database.Collection(name)
}

// Ping checks the primary is reachable
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from MongoDB
func (c *Client) Close(ctx context.Context) error {
	c.log.Info("Closing MongoDB connection")
	if err := c.client.Disconnect(ctx); err != nil {
		c.log.Error("Error closing MongoDB connection", zap.Error(err))
		return err
	}
	c.log.Info("MongoDB connection closed successfully")
	return nil
}
