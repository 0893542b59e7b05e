package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nani454554/portfolio/internal/domain"
	"github.com/nani454554/portfolio/internal/dto"
	"github.com/nani454554/portfolio/internal/queue"
	"github.com/nani454554/portfolio/internal/repository"
)

// MaxContactMessages caps the contact message listing
const MaxContactMessages = 100

var (
	// ErrInvalidContact is returned when a submission fails business validation
	ErrInvalidContact = errors.New("invalid contact submission")

	// ErrInvalidTimelineQuery is returned when timeline parameters are inconsistent
	ErrInvalidTimelineQuery = errors.New("invalid timeline query")
)

// ResumeGenerator renders the resume document
type ResumeGenerator func() ([]byte, error)

// PortfolioService represents the portfolio service
type PortfolioService struct {
	store     repository.RecordStore
	publisher queue.TrackingPublisher
	timeline  repository.TimelineReader
	generate  ResumeGenerator
	log       *zap.Logger
}

// NewPortfolioService creates a new portfolio service. A nil publisher
// discards tracking events and a nil timeline disables timeline analytics.
func NewPortfolioService(
	store repository.RecordStore,
	publisher queue.TrackingPublisher,
	timeline repository.TimelineReader,
	generate ResumeGenerator,
	log *zap.Logger,
) *PortfolioService {
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}
	return &PortfolioService{
		store:     store,
		publisher: publisher,
		timeline:  timeline,
		generate:  generate,
		log:       log,
	}
}

// SubmitContact stores a contact message and then a contact_form view.
// The two writes are independent: a failed view write leaves the message stored.
func (s *PortfolioService) SubmitContact(ctx context.Context, req *dto.SubmitContactRequest, client dto.ClientInfo) (*domain.ContactMessage, error) {
	required := []struct{ field, value string }{
		{"name", req.Name},
		{"subject", req.Subject},
		{"message", req.Message},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, fmt.Errorf("%w: %s must not be blank", ErrInvalidContact, r.field)
		}
	}

	msg := domain.NewContactMessage(req.Name, req.Email, req.Company, req.Subject, req.Message)
	if err := s.store.InsertContactMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}
	s.publish(ctx, domain.ContactEvent(msg, client.IPAddress, client.UserAgent))

	view := domain.NewPortfolioView(client.IPAddress, client.UserAgent, domain.PageContactForm)
	if err := s.store.InsertView(ctx, view); err != nil {
		return nil, fmt.Errorf("failed to track contact submission: %w", err)
	}
	s.publish(ctx, domain.ViewEvent(view))

	s.log.Info("Contact message stored",
		zap.String("contact_id", msg.ID),
		zap.String("view_id", view.ID))

	return msg, nil
}

// ListContactMessages returns the newest contact messages, capped at MaxContactMessages
func (s *PortfolioService) ListContactMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	messages, err := s.store.ListContactMessages(ctx, MaxContactMessages)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	if messages == nil {
		messages = []*domain.ContactMessage{}
	}
	return messages, nil
}

// TrackView stores a portfolio page view
func (s *PortfolioService) TrackView(ctx context.Context, client dto.ClientInfo) error {
	view := domain.NewPortfolioView(client.IPAddress, client.UserAgent, domain.PagePortfolio)
	if err := s.store.InsertView(ctx, view); err != nil {
		return fmt.Errorf("failed to store portfolio view: %w", err)
	}
	s.publish(ctx, domain.ViewEvent(view))
	return nil
}

// DownloadResume records the download and then renders the resume.
// The download stays recorded when rendering fails.
func (s *PortfolioService) DownloadResume(ctx context.Context, client dto.ClientInfo) ([]byte, error) {
	download := domain.NewResumeDownload(client.IPAddress, client.UserAgent, domain.DownloadTypePDF)
	if err := s.store.InsertDownload(ctx, download); err != nil {
		return nil, fmt.Errorf("failed to store resume download: %w", err)
	}
	s.publish(ctx, domain.DownloadEvent(download))

	document, err := s.generate()
	if err != nil {
		s.log.Warn("Resume generation failed after download was recorded",
			zap.String("download_id", download.ID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to generate resume: %w", err)
	}

	return document, nil
}

// GetAnalytics counts each collection independently
func (s *PortfolioService) GetAnalytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	views, err := s.store.CountViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count views: %w", err)
	}

	downloads, err := s.store.CountDownloads(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count downloads: %w", err)
	}

	contacts, err := s.store.CountContactMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count contact messages: %w", err)
	}

	return &dto.AnalyticsResponse{
		TotalViews:     views,
		TotalDownloads: downloads,
		TotalContacts:  contacts,
	}, nil
}

// Ping checks the record store
func (s *PortfolioService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *PortfolioService) publish(ctx context.Context, event *domain.TrackingEvent) {
	if err := s.publisher.PublishTrackingEvent(ctx, event); err != nil {
		s.log.Warn("Failed to publish tracking event",
			zap.String("event_id", event.EventID),
			zap.String("event_type", event.EventType),
			zap.Error(err))
	}
}
