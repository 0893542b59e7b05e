package domain

import "time"

// Tracking event types carried on the stream
const (
	EventTypeView     = "view"
	EventTypeDownload = "download"
	EventTypeContact  = "contact"
)

// TrackingEvent is the stream representation of a persisted record, stored in ClickHouse
type TrackingEvent struct {
	EventID     string    `json:"event_id" ch:"event_id"`
	EventType   string    `json:"event_type" ch:"event_type"`
	Page        string    `json:"page" ch:"page"`
	IPAddress   string    `json:"ip_address" ch:"ip_address"`
	UserAgent   string    `json:"user_agent" ch:"user_agent"`
	OccurredAt  int64     `json:"occurred_at" ch:"occurred_at"`
	ProcessedAt time.Time `json:"-" ch:"processed_at"`
	Version     uint64    `json:"-" ch:"version"`
}

// ViewEvent converts a view into its stream event
func ViewEvent(v *PortfolioView) *TrackingEvent {
	return &TrackingEvent{
		EventID:    v.ID,
		EventType:  EventTypeView,
		Page:       v.PageViewed,
		IPAddress:  v.IPAddress,
		UserAgent:  deref(v.UserAgent),
		OccurredAt: v.VisitedAt.UnixMilli(),
	}
}

// DownloadEvent converts a download into its stream event
func DownloadEvent(d *ResumeDownload) *TrackingEvent {
	return &TrackingEvent{
		EventID:    d.ID,
		EventType:  EventTypeDownload,
		Page:       d.DownloadType,
		IPAddress:  d.IPAddress,
		UserAgent:  deref(d.UserAgent),
		OccurredAt: d.DownloadedAt.UnixMilli(),
	}
}

// ContactEvent converts a contact submission into its stream event.
// The sender's address and message body never leave the record store.
func ContactEvent(m *ContactMessage, ipAddress string, userAgent *string) *TrackingEvent {
	return &TrackingEvent{
		EventID:    m.ID,
		EventType:  EventTypeContact,
		Page:       PageContactForm,
		IPAddress:  ipAddress,
		UserAgent:  deref(userAgent),
		OccurredAt: m.CreatedAt.UnixMilli(),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
