package consumer

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nani454554/portfolio/internal/domain"
)

var errMissingField = errors.New("missing required field")

// TrackingEventParser implements MessageParser for JSON tracking events
type TrackingEventParser struct {
	now func() time.Time
}

// NewTrackingEventParser creates a new tracking event parser
func NewTrackingEventParser() *TrackingEventParser {
	return &TrackingEventParser{now: time.Now}
}

// Parse decodes a JSON message body and stamps the processing time and row version
func (p *TrackingEventParser) Parse(body []byte) (*domain.TrackingEvent, error) {
	var event domain.TrackingEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	if event.EventID == "" {
		return nil, fmt.Errorf("%w: event_id", errMissingField)
	}

	switch event.EventType {
	case domain.EventTypeView, domain.EventTypeDownload, domain.EventTypeContact:
	case "":
		return nil, fmt.Errorf("%w: event_type", errMissingField)
	default:
		return nil, fmt.Errorf("unknown event_type %q", event.EventType)
	}

	if event.OccurredAt <= 0 {
		return nil, fmt.Errorf("%w: occurred_at", errMissingField)
	}

	now := p.now()
	event.ProcessedAt = now
	event.Version = uint64(now.UnixNano())

	return &event, nil
}
