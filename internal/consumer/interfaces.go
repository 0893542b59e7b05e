package consumer

import (
	"github.com/nani454554/portfolio/internal/domain"
)

// MessageParser decodes a raw queue message body into a tracking event
type MessageParser interface {
	Parse(body []byte) (*domain.TrackingEvent, error)
}
