package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"Key: 'SubmitContactRequest.Email' Error:Field validation for 'Email' failed on the 'email' tag"`
}

// RootResponse is the API liveness marker
type RootResponse struct {
	Message string `json:"message" example:"Nikhil Kumar Bandi - Portfolio API"`
	Status  string `json:"status" example:"active"`
}

// HealthResponse reports record store reachability
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message,omitempty"`
}

// TrackViewResponse acknowledges a tracked view
type TrackViewResponse struct {
	Status string `json:"status" example:"tracked"`
}

// AnalyticsResponse holds the three independent record counts
type AnalyticsResponse struct {
	TotalViews     int64 `json:"total_views" example:"1200"`
	TotalDownloads int64 `json:"total_downloads" example:"85"`
	TotalContacts  int64 `json:"total_contacts" example:"14"`
}

// TimelineGroupData represents aggregated tracking counts for a specific group
type TimelineGroupData struct {
	GroupValue string `json:"group_value" example:"2024-08-12"`
	TotalCount uint64 `json:"total_count" example:"150"`
}

// TimelineResponse represents the timeline analytics response
type TimelineResponse struct {
	EventType      string              `json:"event_type" example:"view"`
	From           int64               `json:"from" example:"1723475612"`
	To             int64               `json:"to" example:"1723562012"`
	TotalCount     uint64              `json:"total_count" example:"500"`
	UniqueVisitors uint64              `json:"unique_visitors" example:"230"`
	GroupBy        string              `json:"group_by,omitempty" example:"day"`
	Groups         []TimelineGroupData `json:"groups,omitempty"`
}
