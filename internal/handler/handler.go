package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/BarkinBalci/email-analytics-dashboard/docs"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/dashboard"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/dto"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/service"
)

const (
	themeCookieMaxAge = 365 * 24 * 60 * 60
	loadFailedMessage = "Failed to load dashboard data. Please try again later."
)

// Options configure the rendered dashboard
type Options struct {
	DefaultTheme    dashboard.Theme
	RefreshInterval time.Duration
	TopCompanies    int
}

type Handler struct {
	dashboardService service.DashboardServicer
	options          Options
	router           *gin.Engine
	log              *zap.Logger
}

func NewHandler(dashboardService service.DashboardServicer, options Options, log *zap.Logger) (*Handler, error) {
	templates, err := dashboard.Templates()
	if err != nil {
		return nil, err
	}

	h := &Handler{
		dashboardService: dashboardService,
		options:          options,
		router:           gin.Default(),
		log:              log,
	}
	h.router.SetHTMLTemplate(templates)

	h.registerRoutes()

	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.GET("/ready", h.readinessCheck)
	h.router.GET("/api/snapshot", h.getSnapshot)
	h.router.GET("/", h.renderDashboard)
	h.router.POST("/theme", h.switchTheme)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// readinessCheck handles GET /ready
// @Summary Readiness check
// @Description Check that the email store is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} dto.ErrorResponse
// @Router /ready [get]
func (h *Handler) readinessCheck(c *gin.Context) {
	if err := h.dashboardService.Ping(c.Request.Context()); err != nil {
		h.log.Warn("Readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:   "unavailable",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// getSnapshot handles GET /api/snapshot
// @Summary Get dashboard snapshot
// @Description Compute every dashboard metric for an inclusive date range
// @Tags dashboard
// @Produce json
// @Param start query string false "First day of the range (YYYY-MM-DD), defaults to seven days before end" example:"2025-03-03"
// @Param end query string false "Last day of the range (YYYY-MM-DD), defaults to today" example:"2025-03-09"
// @Success 200 {object} dto.SnapshotResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/snapshot [get]
func (h *Handler) getSnapshot(c *gin.Context) {
	var req dto.GetSnapshotRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid snapshot request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.dashboardService.GetSnapshot(c.Request.Context(), &req)
	if err != nil {
		if service.IsValidationError(err) {
			h.log.Warn("Invalid snapshot range",
				zap.Error(err),
				zap.String("start", req.Start),
				zap.String("end", req.End))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
			})
			return
		}

		h.log.Error("Failed to get snapshot",
			zap.Error(err),
			zap.String("start", req.Start),
			zap.String("end", req.End))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Snapshot retrieved",
		zap.String("start", response.Start),
		zap.String("end", response.End),
		zap.Bool("empty", response.Empty))

	c.JSON(http.StatusOK, response)
}

func (h *Handler) renderDashboard(c *gin.Context) {
	theme := h.resolveTheme(c)
	if c.Query("theme") != "" {
		h.setThemeCookie(c, theme)
	}

	opts := dashboard.PageOptions{
		Theme:           theme,
		RefreshInterval: h.options.RefreshInterval,
		TopCompanies:    h.options.TopCompanies,
		ReturnTo:        returnPath(c.Request),
	}

	req := dto.GetSnapshotRequest{Start: c.Query("start"), End: c.Query("end")}

	status := http.StatusOK
	message := ""
	snapshot, err := h.dashboardService.GetSnapshot(c.Request.Context(), &req)
	if err != nil {
		if service.IsValidationError(err) {
			status, message = http.StatusBadRequest, validationMessage(err)
		} else {
			h.log.Error("Failed to load dashboard", zap.Error(err))
			status, message = http.StatusInternalServerError, loadFailedMessage
		}
		snapshot = nil
	}

	page, err := dashboard.NewPage(snapshot, message, opts)
	if err != nil {
		h.log.Error("Failed to build dashboard page", zap.Error(err))
		status = http.StatusInternalServerError
		page, _ = dashboard.NewPage(nil, loadFailedMessage, opts)
	}

	c.HTML(status, dashboard.TemplateName, page)
}

func (h *Handler) switchTheme(c *gin.Context) {
	current := h.resolveTheme(c)
	theme := dashboard.ParseTheme(c.PostForm("theme"), current.Toggle())
	h.setThemeCookie(c, theme)

	h.log.Debug("Theme switched", zap.String("theme", string(theme)))

	c.Redirect(http.StatusSeeOther, safeReturnPath(c.PostForm("return_to")))
}

func (h *Handler) resolveTheme(c *gin.Context) dashboard.Theme {
	theme := h.options.DefaultTheme
	if cookie, err := c.Cookie(dashboard.ThemeCookie); err == nil {
		theme = dashboard.ParseTheme(cookie, theme)
	}
	return dashboard.ParseTheme(c.Query("theme"), theme)
}

func (h *Handler) setThemeCookie(c *gin.Context, theme dashboard.Theme) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(dashboard.ThemeCookie, string(theme), themeCookieMaxAge, "/", "", false, true)
}

// returnPath is the current page without its theme override
func returnPath(r *http.Request) string {
	query := r.URL.Query()
	query.Del("theme")
	if len(query) == 0 {
		return r.URL.Path
	}
	return r.URL.Path + "?" + query.Encode()
}

// safeReturnPath only allows redirects back into this site
func safeReturnPath(path string) string {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return "/"
	}
	return path
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		return "Invalid date. Please use YYYY-MM-DD."
	default:
		return "Error: Start date must be before end date."
	}
}
