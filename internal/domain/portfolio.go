package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default labels for tracking records.
const (
	PagePortfolio   = "portfolio"
	PageContactForm = "contact_form"
	DownloadTypePDF = "pdf"
)

// ContactMessage represents a contact form submission stored in the record store
type ContactMessage struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Company   *string   `json:"company" bson:"company"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	IsRead    bool      `json:"is_read" bson:"is_read"`
}

// NewContactMessage builds an unread message with a fresh identifier and creation time
func NewContactMessage(name, email string, company *string, subject, message string) *ContactMessage {
	return &ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Company:   company,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now().UTC(),
		IsRead:    false,
	}
}

// PortfolioView represents a single tracked page view
type PortfolioView struct {
	ID         string    `json:"id" bson:"id"`
	IPAddress  string    `json:"ip_address" bson:"ip_address"`
	UserAgent  *string   `json:"user_agent" bson:"user_agent"`
	VisitedAt  time.Time `json:"visited_at" bson:"visited_at"`
	PageViewed string    `json:"page_viewed" bson:"page_viewed"`
}

// NewPortfolioView builds a view record. An empty page falls back to PagePortfolio.
func NewPortfolioView(ipAddress string, userAgent *string, page string) *PortfolioView {
	if page == "" {
		page = PagePortfolio
	}
	return &PortfolioView{
		ID:         uuid.NewString(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		VisitedAt:  time.Now().UTC(),
		PageViewed: page,
	}
}

// ResumeDownload represents a single tracked resume download
type ResumeDownload struct {
	ID           string    `json:"id" bson:"id"`
	IPAddress    string    `json:"ip_address" bson:"ip_address"`
	UserAgent    *string   `json:"user_agent" bson:"user_agent"`
	DownloadedAt time.Time `json:"downloaded_at" bson:"downloaded_at"`
	DownloadType string    `json:"download_type" bson:"download_type"`
}

// NewResumeDownload builds a download record. An empty type falls back to DownloadTypePDF.
func NewResumeDownload(ipAddress string, userAgent *string, downloadType string) *ResumeDownload {
	if downloadType == "" {
		downloadType = DownloadTypePDF
	}
	return &ResumeDownload{
		ID:           uuid.NewString(),
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
		DownloadedAt: time.Now().UTC(),
		DownloadType: downloadType,
	}
}
