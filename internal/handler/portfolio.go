package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nani454554/portfolio/internal/dto"
	"github.com/nani454554/portfolio/internal/repository"
	"github.com/nani454554/portfolio/internal/resume"
	"github.com/nani454554/portfolio/internal/service"
)

// submitContact handles POST /api/contact
// @Summary Submit the contact form
// @Description Store a contact message and record a contact_form view
// @Tags contact
// @Accept json
// @Produce json
// @Param contact body dto.SubmitContactRequest true "Contact form"
// @Success 200 {object} domain.ContactMessage
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/contact [post]
func (h *Handler) submitContact(c *gin.Context) {
	var req dto.SubmitContactRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.log.Warn("Invalid contact submission", zap.Error(err))
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
			})
			return
		}

		h.log.Warn("Malformed contact request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_json",
			Message: err.Error(),
		})
		return
	}

	msg, err := h.portfolioService.SubmitContact(c.Request.Context(), &req, clientInfo(c))
	if err != nil {
		if errors.Is(err, service.ErrInvalidContact) {
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
			})
			return
		}

		h.log.Error("Failed to submit contact form",
			zap.Error(err),
			zap.String("email", req.Email))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: fmt.Sprintf("error submitting contact form: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, msg)
}

// listContactMessages handles GET /api/contact-messages
// @Summary List contact messages
// @Description Newest contact messages first, at most 100
// @Tags contact
// @Produce json
// @Success 200 {array} domain.ContactMessage
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/contact-messages [get]
func (h *Handler) listContactMessages(c *gin.Context) {
	messages, err := h.portfolioService.ListContactMessages(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list contact messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: fmt.Sprintf("error fetching messages: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// downloadResume handles GET /api/download-resume
// @Summary Download the resume
// @Description Record a resume download and return the generated PDF
// @Tags resume
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/download-resume [get]
func (h *Handler) downloadResume(c *gin.Context) {
	document, err := h.portfolioService.DownloadResume(c.Request.Context(), clientInfo(c))
	if err != nil {
		h.log.Error("Failed to serve resume", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: fmt.Sprintf("error generating resume: %v", err),
		})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+h.options.ResumeFilename)
	c.Data(http.StatusOK, resume.ContentType, document)
}

// trackView handles POST /api/track-view
// @Summary Track a portfolio view
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.TrackViewResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/track-view [post]
func (h *Handler) trackView(c *gin.Context) {
	if err := h.portfolioService.TrackView(c.Request.Context(), clientInfo(c)); err != nil {
		h.log.Error("Failed to track view", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: fmt.Sprintf("error tracking view: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.TrackViewResponse{Status: "tracked"})
}

// getAnalytics handles GET /api/analytics
// @Summary Get analytics totals
// @Description Total views, resume downloads and contact messages
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/analytics [get]
func (h *Handler) getAnalytics(c *gin.Context) {
	analytics, err := h.portfolioService.GetAnalytics(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to get analytics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: fmt.Sprintf("error fetching analytics: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// getTimeline handles GET /api/analytics/timeline
// @Summary Get timeline analytics
// @Description Aggregated tracking events with optional grouping by page, hour, or day
// @Tags analytics
// @Produce json
// @Param event_type query string true "Tracking event type" Enums(view, download, contact)
// @Param from query int true "Start timestamp (Unix epoch)" example:"1723475612"
// @Param to query int true "End timestamp (Unix epoch)" example:"1723562012"
// @Param group_by query string false "Field to group by (page, hour, day)" Enums(page, hour, day)
// @Success 200 {object} dto.TimelineResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/analytics/timeline [get]
func (h *Handler) getTimeline(c *gin.Context) {
	var req dto.GetTimelineRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid timeline request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.portfolioService.GetTimeline(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTimelineQuery):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
			})
		case errors.Is(err, repository.ErrTimelineUnavailable):
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error:   "timeline_unavailable",
				Message: err.Error(),
			})
		default:
			h.log.Error("Failed to get timeline",
				zap.Error(err),
				zap.String("event_type", req.EventType),
				zap.Int64("from", req.From),
				zap.Int64("to", req.To))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "internal_error",
				Message: err.Error(),
			})
		}
		return
	}

	h.log.Info("Timeline retrieved",
		zap.String("event_type", req.EventType),
		zap.Uint64("total_count", response.TotalCount),
		zap.Uint64("unique_visitors", response.UniqueVisitors))

	c.JSON(http.StatusOK, response)
}
