package service

import (
	"context"

	"github.com/nani454554/portfolio/internal/domain"
	"github.com/nani454554/portfolio/internal/dto"
)

// PortfolioServicer defines the interface for portfolio service operations
type PortfolioServicer interface {
	SubmitContact(ctx context.Context, req *dto.SubmitContactRequest, client dto.ClientInfo) (*domain.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]*domain.ContactMessage, error)
	TrackView(ctx context.Context, client dto.ClientInfo) error
	DownloadResume(ctx context.Context, client dto.ClientInfo) ([]byte, error)
	GetAnalytics(ctx context.Context) (*dto.AnalyticsResponse, error)
	GetTimeline(ctx context.Context, req *dto.GetTimelineRequest) (*dto.TimelineResponse, error)
	Ping(ctx context.Context) error
}
