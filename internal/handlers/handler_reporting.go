package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	portssvc "github.com/fadee/my_expenses_app/internal/core/ports/services"
	"github.com/fadee/my_expenses_app/internal/dto"
	"github.com/fadee/my_expenses_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for report and dashboard views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the report and dashboard routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.getMonthlyReport)
	}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.getDashboardStats)
	}
}

// getMonthlyReport godoc
// @Summary Generate a monthly report
// @Description Aggregates one currency's entries, transfers and savings for a month
// @Tags reports
// @Produce  json
// @Param   month query string true "Month (YYYY-MM)"
// @Param   currency query string true "Currency code"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.MonthlyReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getMonthlyReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	month, err := domain.ParseMonth(params.Month)
	if err != nil {
		logger.Warn("Invalid month format", slog.String("month", params.Month))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format. Use YYYY-MM"})
		return
	}

	logger = logger.With(
		slog.String("user_id", userID),
		slog.String("month", month.String()),
		slog.String("currency", params.Currency),
	)

	report, err := h.reportingService.MonthlyReport(c.Request.Context(), userID, params.Currency, month)
	if err != nil {
		logger.Error("Failed to generate monthly report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// getDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Summarizes the current month's income and expenses plus all-time balances and savings per currency
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute dashboard stats"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *reportingHandler) getDashboardStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.reportingService.DashboardStats(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
