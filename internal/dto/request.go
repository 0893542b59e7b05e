package dto

// SubmitContactRequest represents a contact form submission
type SubmitContactRequest struct {
	Name    string  `json:"name" binding:"required" example:"John Smith"`
	Email   string  `json:"email" binding:"required,email" example:"john.smith@techcorp.com"`
	Company *string `json:"company" example:"TechCorp Solutions"`
	Subject string  `json:"subject" binding:"required" example:"DevOps Consulting Opportunity"`
	Message string  `json:"message" binding:"required" example:"Would you be available for a brief discussion?"`
}

// GetTimelineRequest represents a timeline analytics query
type GetTimelineRequest struct {
	EventType string `form:"event_type" binding:"required,oneof=view download contact" example:"view"`
	From      int64  `form:"from" binding:"required" example:"1723475612"`
	To        int64  `form:"to" binding:"required" example:"1723562012"`
	GroupBy   string `form:"group_by" binding:"omitempty,oneof=page hour day" example:"day"`
}

// ClientInfo identifies the caller of a tracked request
type ClientInfo struct {
	IPAddress string
	UserAgent *string
}
