package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nani454554/portfolio/internal/dto"
	"github.com/nani454554/portfolio/internal/repository"
)

const (
	testFrom int64 = 1723475612
	testTo   int64 = 1723562012
)

func TestPortfolioService_GetTimeline_Success(t *testing.T) {
	reader := new(MockTimelineReader)
	reader.On("GetTimeline", mock.Anything, repository.TimelineQuery{
		EventType: "view",
		From:      testFrom,
		To:        testTo,
		GroupBy:   "page",
	}).Return(&repository.TimelineResult{
		TotalCount:     12,
		UniqueVisitors: 5,
		Groups: []repository.TimelineGroupResult{
			{GroupValue: "portfolio", TotalCount: 9},
			{GroupValue: "contact_form", TotalCount: 3},
		},
	}, nil)

	service := NewPortfolioService(&memoryStore{}, nil, reader, fakeResume, zap.NewNop())

	resp, err := service.GetTimeline(context.Background(), &dto.GetTimelineRequest{
		EventType: "view",
		From:      testFrom,
		To:        testTo,
		GroupBy:   "page",
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(12), resp.TotalCount)
	assert.Equal(t, uint64(5), resp.UniqueVisitors)
	require.Len(t, resp.Groups, 2)
	assert.Equal(t, "portfolio", resp.Groups[0].GroupValue)
	reader.AssertExpectations(t)
}

func TestPortfolioService_GetTimeline_Unavailable(t *testing.T) {
	service := NewPortfolioService(&memoryStore{}, nil, nil, fakeResume, zap.NewNop())

	resp, err := service.GetTimeline(context.Background(), &dto.GetTimelineRequest{
		EventType: "view",
		From:      testFrom,
		To:        testTo,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repository.ErrTimelineUnavailable)
}

func TestPortfolioService_GetTimeline_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *dto.GetTimelineRequest
		wantErr string
	}{
		{
			name:    "from after to",
			req:     &dto.GetTimelineRequest{EventType: "view", From: testTo, To: testFrom},
			wantErr: "from timestamp must be less than or equal to to timestamp",
		},
		{
			name:    "hourly range too large",
			req:     &dto.GetTimelineRequest{EventType: "download", From: testFrom, To: testFrom + 91*24*3600, GroupBy: "hour"},
			wantErr: "time range too large for hourly grouping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := new(MockTimelineReader)
			service := NewPortfolioService(&memoryStore{}, nil, reader, fakeResume, zap.NewNop())

			resp, err := service.GetTimeline(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidTimelineQuery)
			assert.Contains(t, err.Error(), tt.wantErr)
			reader.AssertNotCalled(t, "GetTimeline", mock.Anything, mock.Anything)
		})
	}
}

func TestPortfolioService_GetTimeline_RepositoryError(t *testing.T) {
	reader := new(MockTimelineReader)
	reader.On("GetTimeline", mock.Anything, mock.Anything).Return(nil, errors.New("clickhouse down"))

	service := NewPortfolioService(&memoryStore{}, nil, reader, fakeResume, zap.NewNop())

	resp, err := service.GetTimeline(context.Background(), &dto.GetTimelineRequest{
		EventType: "contact",
		From:      testFrom,
		To:        testTo,
		GroupBy:   "day",
	})

	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTimelineQuery)
}
