package repository

import (
	"context"
	"errors"

	"github.com/nani454554/portfolio/internal/domain"
)

// ErrTimelineUnavailable is returned when no analytics warehouse is configured
var ErrTimelineUnavailable = errors.New("timeline analytics unavailable")

// ContactRepository stores contact form submissions
type ContactRepository interface {
	// InsertContactMessage persists a single contact message
	InsertContactMessage(ctx context.Context, msg *domain.ContactMessage) error

	// ListContactMessages returns at most limit messages, newest first
	ListContactMessages(ctx context.Context, limit int) ([]*domain.ContactMessage, error)

	// CountContactMessages counts every stored contact message
	CountContactMessages(ctx context.Context) (int64, error)
}

// ViewRepository stores portfolio view records
type ViewRepository interface {
	InsertView(ctx context.Context, view *domain.PortfolioView) error
	CountViews(ctx context.Context) (int64, error)
}

// DownloadRepository stores resume download records
type DownloadRepository interface {
	InsertDownload(ctx context.Context, download *domain.ResumeDownload) error
	CountDownloads(ctx context.Context) (int64, error)
}

// RecordStore is the document store holding the three portfolio collections
type RecordStore interface {
	ContactRepository
	ViewRepository
	DownloadRepository

	// InitSchema creates indexes or tables if they don't exist
	InitSchema(ctx context.Context) error

	// Ping checks if the store connection is alive
	Ping(ctx context.Context) error

	// Close releases the store connection
	Close(ctx context.Context) error
}

// TimelineQuery represents timeline query parameters
type TimelineQuery struct {
	EventType string
	From      int64
	To        int64
	GroupBy   string
}

// TimelineGroupResult represents aggregated counts for a specific group
type TimelineGroupResult struct {
	GroupValue string
	TotalCount uint64
}

// TimelineResult represents the result of a timeline query
type TimelineResult struct {
	TotalCount     uint64
	UniqueVisitors uint64
	Groups         []TimelineGroupResult
}

// TimelineReader serves aggregated tracking analytics
type TimelineReader interface {
	GetTimeline(ctx context.Context, query TimelineQuery) (*TimelineResult, error)
}

// EventRepository defines the interface for tracking event storage operations
type EventRepository interface {
	TimelineReader

	// InsertBatch inserts a batch of events into the storage
	InsertBatch(ctx context.Context, events []*domain.TrackingEvent) (int, error)

	// InitSchema initializes the database schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}
