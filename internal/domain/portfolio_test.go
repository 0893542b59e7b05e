package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewContactMessage_AssignsIdentityAndDefaults(t *testing.T) {
	before := time.Now().UTC()

	msg := NewContactMessage("John Smith", "john@x.com", nil, "Hi", "Hello")

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "john@x.com", msg.Email)
	assert.False(t, msg.IsRead)
	assert.Nil(t, msg.Company)
	assert.False(t, msg.CreatedAt.Before(before))
	assert.Equal(t, time.UTC, msg.CreatedAt.Location())
}

func TestNewContactMessage_UniqueIdentifiers(t *testing.T) {
	a := NewContactMessage("a", "a@x.com", nil, "s", "m")
	b := NewContactMessage("a", "a@x.com", nil, "s", "m")

	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewPortfolioView_DefaultPage(t *testing.T) {
	view := NewPortfolioView("127.0.0.1", nil, "")

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, PagePortfolio, view.PageViewed)
	assert.False(t, view.VisitedAt.IsZero())
}

func TestNewPortfolioView_ExplicitPage(t *testing.T) {
	ua := "curl/8.0"
	view := NewPortfolioView("10.0.0.1", &ua, PageContactForm)

	assert.Equal(t, PageContactForm, view.PageViewed)
	assert.Equal(t, "10.0.0.1", view.IPAddress)
	assert.Equal(t, "curl/8.0", *view.UserAgent)
}

func TestNewResumeDownload_DefaultType(t *testing.T) {
	download := NewResumeDownload("127.0.0.1", nil, "")

	assert.NotEmpty(t, download.ID)
	assert.Equal(t, DownloadTypePDF, download.DownloadType)
	assert.False(t, download.DownloadedAt.IsZero())
}

func TestTrackingEvents_FromRecords(t *testing.T) {
	ua := "Mozilla/5.0"
	view := NewPortfolioView("1.2.3.4", &ua, "")
	download := NewResumeDownload("1.2.3.4", nil, "")
	msg := NewContactMessage("n", "n@x.com", nil, "s", "m")

	ve := ViewEvent(view)
	assert.Equal(t, view.ID, ve.EventID)
	assert.Equal(t, EventTypeView, ve.EventType)
	assert.Equal(t, PagePortfolio, ve.Page)
	assert.Equal(t, "Mozilla/5.0", ve.UserAgent)
	assert.Equal(t, view.VisitedAt.UnixMilli(), ve.OccurredAt)

	de := DownloadEvent(download)
	assert.Equal(t, EventTypeDownload, de.EventType)
	assert.Equal(t, DownloadTypePDF, de.Page)
	assert.Empty(t, de.UserAgent)

	ce := ContactEvent(msg, "1.2.3.4", &ua)
	assert.Equal(t, msg.ID, ce.EventID)
	assert.Equal(t, EventTypeContact, ce.EventType)
	assert.Equal(t, PageContactForm, ce.Page)
}
