package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/nani454554/portfolio/internal/dto"
)

func TestCORS_WildcardOrigin(t *testing.T) {
	mockService := new(MockPortfolioService)
	handler := newTestHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_ConfiguredOrigin(t *testing.T) {
	mockService := new(MockPortfolioService)
	mockService.On("TrackView", mock.Anything, mock.Anything).Return(nil)

	handler := NewHandler(mockService, Options{CORSOrigins: []string{"https://nikhil.dev"}}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/track-view", nil)
	req.Header.Set("Origin", "https://nikhil.dev")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://nikhil.dev", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_UnknownOrigin(t *testing.T) {
	handler := NewHandler(new(MockPortfolioService), Options{CORSOrigins: []string{"https://nikhil.dev"}}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_OptionsPreflight(t *testing.T) {
	mockService := new(MockPortfolioService)
	handler := newTestHandler(mockService)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	mockService.AssertNotCalled(t, "SubmitContact", mock.Anything, mock.Anything, mock.Anything)
}

func TestCORS_HeadersOnErrorResponses(t *testing.T) {
	mockService := new(MockPortfolioService)
	handler := newTestHandler(mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	var response dto.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "invalid_json", response.Error)
}
