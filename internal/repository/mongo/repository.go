package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/nani454554/portfolio/internal/domain"
	"github.com/nani454554/portfolio/internal/repository"
)

// Collection names
const (
	ContactMessagesCollection = "contact_messages"
	PortfolioViewsCollection  = "portfolio_views"
	ResumeDownloadsCollection = "resume_downloads"
)

var _ repository.RecordStore = (*Repository)(nil)

// Repository implements RecordStore for MongoDB
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new MongoDB repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema creates the lookup indexes and a unique index on each record identifier
func (r *Repository) InitSchema(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		PortfolioViewsCollection: {
			uniqueIDIndex(),
			ascending("visited_at"),
			ascending("ip_address"),
		},
		ResumeDownloadsCollection: {
			uniqueIDIndex(),
			ascending("downloaded_at"),
			ascending("ip_address"),
		},
		ContactMessagesCollection: {
			uniqueIDIndex(),
			ascending("created_at"),
			ascending("email"),
			ascending("is_read"),
		},
	}

	for collection, models := range indexes {
		if _, err := r.client.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}

	r.log.Info("MongoDB indexes initialized successfully")
	return nil
}

func uniqueIDIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}

func ascending(field string) mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}}
}

// InsertContactMessage inserts a contact message document
func (r *Repository) InsertContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	if _, err := r.client.Collection(ContactMessagesCollection).InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

// ListContactMessages returns up to limit contact messages ordered by created_at descending
func (r *Repository) ListContactMessages(ctx context.Context, limit int) ([]*domain.ContactMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.client.Collection(ContactMessagesCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}

	messages := make([]*domain.ContactMessage, 0, limit)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}

	return messages, nil
}

// CountContactMessages counts documents in the contact messages collection
func (r *Repository) CountContactMessages(ctx context.Context) (int64, error) {
	return r.count(ctx, ContactMessagesCollection)
}

// InsertView inserts a portfolio view document
func (r *Repository) InsertView(ctx context.Context, view *domain.PortfolioView) error {
	if _, err := r.client.Collection(PortfolioViewsCollection).InsertOne(ctx, view); err != nil {
		return fmt.Errorf("failed to insert portfolio view: %w", err)
	}
	return nil
}

// CountViews counts documents in the portfolio views collection
func (r *Repository) CountViews(ctx context.Context) (int64, error) {
	return r.count(ctx, PortfolioViewsCollection)
}

// InsertDownload inserts a resume download document
func (r *Repository) InsertDownload(ctx context.Context, download *domain.ResumeDownload) error {
	if _, err := r.client.Collection(ResumeDownloadsCollection).InsertOne(ctx, download); err != nil {
		return fmt.Errorf("failed to insert resume download: %w", err)
	}
	return nil
}

// CountDownloads counts documents in the resume downloads collection
func (r *Repository) CountDownloads(ctx context.Context) (int64, error) {
	return r.count(ctx, ResumeDownloadsCollection)
}

func (r *Repository) count(ctx context.Context, collection string) (int64, error) {
	n, err := r.client.Collection(collection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return n, nil
}

// Ping checks if the MongoDB connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

// Close closes the MongoDB connection
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Close(ctx)
}
