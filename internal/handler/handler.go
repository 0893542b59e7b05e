package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/nani454554/portfolio/docs"
	"github.com/nani454554/portfolio/internal/dto"
	"github.com/nani454554/portfolio/internal/service"
)

// DefaultResumeFilename is the attachment name used when none is configured
const DefaultResumeFilename = "Nikhil_Kumar_Bandi_Resume.pdf"

// Options configures the HTTP surface
type Options struct {
	CORSOrigins    []string
	ResumeFilename string
}

type Handler struct {
	portfolioService service.PortfolioServicer
	router           *gin.Engine
	options          Options
	log              *zap.Logger
}

func NewHandler(portfolioService service.PortfolioServicer, options Options, log *zap.Logger) *Handler {
	if options.ResumeFilename == "" {
		options.ResumeFilename = DefaultResumeFilename
	}
	if len(options.CORSOrigins) == 0 {
		options.CORSOrigins = []string{"*"}
	}

	h := &Handler{
		portfolioService: portfolioService,
		router:           gin.Default(),
		options:          options,
		log:              log,
	}

	h.router.Use(h.cors())
	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := h.router.Group("/api")
	api.GET("/", h.root)
	api.POST("/contact", h.submitContact)
	api.GET("/contact-messages", h.listContactMessages)
	api.GET("/download-resume", h.downloadResume)
	api.POST("/track-view", h.trackView)
	api.GET("/analytics", h.getAnalytics)
	api.GET("/analytics/timeline", h.getTimeline)
}

// root handles GET /api/
// @Summary API status
// @Description Liveness marker for the portfolio API
// @Tags status
// @Produce json
// @Success 200 {object} dto.RootResponse
// @Router /api/ [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RootResponse{
		Message: "Nikhil Kumar Bandi - Portfolio API",
		Status:  "active",
	})
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check that the service can reach its record store
// @Tags status
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	if err := h.portfolioService.Ping(c.Request.Context()); err != nil {
		h.log.Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "unhealthy",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

func clientInfo(c *gin.Context) dto.ClientInfo {
	info := dto.ClientInfo{IPAddress: c.ClientIP()}
	if ua := c.Request.UserAgent(); ua != "" {
		info.UserAgent = &ua
	}
	return info
}
