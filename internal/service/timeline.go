package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nani454554/portfolio/internal/dto"
	"github.com/nani454554/portfolio/internal/repository"
)

const maxHourlyRangeSeconds = 90 * 24 * 3600

// GetTimeline retrieves aggregated tracking analytics from the warehouse
func (s *PortfolioService) GetTimeline(ctx context.Context, req *dto.GetTimelineRequest) (*dto.TimelineResponse, error) {
	if s.timeline == nil {
		return nil, repository.ErrTimelineUnavailable
	}

	if req.From > req.To {
		s.log.Warn("Invalid time range for timeline",
			zap.Int64("from", req.From),
			zap.Int64("to", req.To),
			zap.String("event_type", req.EventType))
		return nil, fmt.Errorf("%w: from timestamp must be less than or equal to to timestamp", ErrInvalidTimelineQuery)
	}

	if req.GroupBy == "hour" && req.To-req.From > maxHourlyRangeSeconds {
		rangeDays := (req.To - req.From) / (24 * 3600)
		s.log.Warn("Large time range for hourly grouping",
			zap.Int64("range_days", rangeDays))
		return nil, fmt.Errorf("%w: time range too large for hourly grouping (max 90 days, got %d days)", ErrInvalidTimelineQuery, rangeDays)
	}

	query := repository.TimelineQuery{
		EventType: req.EventType,
		From:      req.From,
		To:        req.To,
		GroupBy:   req.GroupBy,
	}

	result, err := s.timeline.GetTimeline(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline from repository: %w", err)
	}

	response := &dto.TimelineResponse{
		EventType:      req.EventType,
		From:           req.From,
		To:             req.To,
		TotalCount:     result.TotalCount,
		UniqueVisitors: result.UniqueVisitors,
		GroupBy:        req.GroupBy,
		Groups:         make([]dto.TimelineGroupData, 0, len(result.Groups)),
	}

	for _, group := range result.Groups {
		response.Groups = append(response.Groups, dto.TimelineGroupData{
			GroupValue: group.GroupValue,
			TotalCount: group.TotalCount,
		})
	}

	return response, nil
}
