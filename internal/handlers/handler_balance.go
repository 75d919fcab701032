package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fadee/my_expenses_app/internal/apperrors"
	"github.com/fadee/my_expenses_app/internal/core/domain"
	portssvc "github.com/fadee/my_expenses_app/internal/core/ports/services"
	"github.com/fadee/my_expenses_app/internal/core/services"
	"github.com/fadee/my_expenses_app/internal/dto"
	"github.com/fadee/my_expenses_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// balanceHandler handles HTTP requests for balance positions and the
// month-close lifecycle.
type balanceHandler struct {
	balanceService    portssvc.BalanceSvcFacade
	monthCloseService portssvc.MonthCloseSvcFacade
}

// newBalanceHandler creates a new balanceHandler.
func newBalanceHandler(bs portssvc.BalanceSvcFacade, mcs portssvc.MonthCloseSvcFacade) *balanceHandler {
	return &balanceHandler{
		balanceService:    bs,
		monthCloseService: mcs,
	}
}

// registerBalanceRoutes registers routes related to balances and month close.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade, monthCloseService portssvc.MonthCloseSvcFacade) {
	h := newBalanceHandler(balanceService, monthCloseService)

	balances := rg.Group("/balances")
	{
		balances.GET("", h.getPositions)
		balances.POST("", h.declareInitialBalance)
		balances.POST("/close-month", h.closeMonth)
		balances.GET("/needs-close", h.needsClose)
		balances.GET("/closed-months", h.closedMonths)
		balances.GET("/audits", h.listAudits)
	}
}

// parseMonthOrDefault reads a YYYY-MM query value, falling back to def.
func parseMonthOrDefault(c *gin.Context, key string, def domain.Month) (domain.Month, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	month, err := domain.ParseMonth(raw)
	if err != nil {
		return def, false
	}
	return month, true
}

// getPositions godoc
// @Summary Get per-currency money positions
// @Description Computes money on hand and savings for every currency with a balance snapshot in the month
// @Tags balances
// @Produce  json
// @Param   month query string false "Month (YYYY-MM)" default(current month)
// @Success 200 {array} dto.PositionResponse
// @Failure 400 {object} map[string]string "Invalid month format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute positions"
// @Security BearerAuth
// @Router /balances [get]
func (h *balanceHandler) getPositions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	month, ok := parseMonthOrDefault(c, "month", domain.MonthOf(time.Now()))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format. Use YYYY-MM"})
		return
	}

	positions, err := h.balanceService.GetPositions(c.Request.Context(), userID, month)
	if err != nil {
		logger.Error("Failed to compute positions", slog.String("error", err.Error()), slog.String("month", month.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute positions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPositionResponses(positions))
}

// declareInitialBalance godoc
// @Summary Declare initial balance for a currency
// @Description Records the starting money-on-hand amount for a currency. Allowed once per currency.
// @Tags balances
// @Accept  json
// @Produce  json
// @Param   balance body dto.DeclareBalanceRequest true "Initial balance details"
// @Success 201 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Balance already declared for currency"
// @Failure 500 {object} map[string]string "Failed to declare initial balance"
// @Security BearerAuth
// @Router /balances [post]
func (h *balanceHandler) declareInitialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DeclareBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for declareInitialBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	snapshot, err := h.balanceService.DeclareInitialBalance(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Initial balance already declared", slog.String("currency", req.Currency))
			c.JSON(http.StatusConflict, gin.H{"error": "Balance already declared for this currency"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error declaring initial balance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to declare initial balance in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to declare initial balance"})
		}
		return
	}

	logger.Info("Initial balance declared successfully", slog.String("balance_id", snapshot.BalanceID), slog.String("currency", snapshot.Currency))
	c.JSON(http.StatusCreated, dto.ToBalanceResponse(snapshot))
}

// closeMonth godoc
// @Summary Close a month
// @Description Reconciles the user-entered closing figures against the ledger, locks the month's records and rolls the balance forward. All currencies in the request commit or roll back together.
// @Tags balances
// @Accept  json
// @Produce  json
// @Param   close body dto.CloseMonthRequest true "Month and per-currency closing figures"
// @Success 200 {object} dto.CloseMonthResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Month already closed for a currency"
// @Failure 500 {object} map[string]string "Failed to close month"
// @Security BearerAuth
// @Router /balances/close-month [post]
func (h *balanceHandler) closeMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CloseMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for closeMonth", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("month", req.Month))

	if err := h.monthCloseService.CloseMonth(c.Request.Context(), userID, req); err != nil {
		if errors.Is(err, services.ErrMonthAlreadyClosed) {
			logger.Warn("Month already closed", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error closing month", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to close month", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close month"})
		}
		return
	}

	logger.Info("Month closed successfully")
	c.JSON(http.StatusOK, dto.CloseMonthResponse{Closed: true})
}

// needsClose godoc
// @Summary Check whether a month needs closing
// @Description Reports whether the month has ledger activity that has not been closed. Defaults to the previous month.
// @Tags balances
// @Produce  json
// @Param   month query string false "Month (YYYY-MM)" default(previous month)
// @Success 200 {object} dto.NeedsClosingResponse
// @Failure 400 {object} map[string]string "Invalid month format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to check month status"
// @Security BearerAuth
// @Router /balances/needs-close [get]
func (h *balanceHandler) needsClose(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	month, ok := parseMonthOrDefault(c, "month", domain.MonthOf(time.Now()).Previous())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format. Use YYYY-MM"})
		return
	}

	needs, err := h.monthCloseService.NeedsClosing(c.Request.Context(), userID, month)
	if err != nil {
		logger.Error("Failed to check month status", slog.String("error", err.Error()), slog.String("month", month.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check month status"})
		return
	}

	c.JSON(http.StatusOK, dto.NeedsClosingResponse{NeedsClosing: needs})
}

// closedMonths godoc
// @Summary List closed currencies for a month
// @Description Lists the currencies already closed for the given month
// @Tags balances
// @Produce  json
// @Param   month query string false "Month (YYYY-MM)" default(current month)
// @Success 200 {object} dto.ClosedCurrenciesResponse
// @Failure 400 {object} map[string]string "Invalid month format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list closed currencies"
// @Security BearerAuth
// @Router /balances/closed-months [get]
func (h *balanceHandler) closedMonths(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	month, ok := parseMonthOrDefault(c, "month", domain.MonthOf(time.Now()))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format. Use YYYY-MM"})
		return
	}

	currencies, err := h.monthCloseService.ClosedCurrencies(c.Request.Context(), userID, month)
	if err != nil {
		logger.Error("Failed to list closed currencies", slog.String("error", err.Error()), slog.String("month", month.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list closed currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ClosedCurrenciesResponse{ClosedCurrencies: currencies})
}

// listAudits godoc
// @Summary List month-close audit records
// @Description Returns the reconciliation audit trail for a month: entered vs calculated figures and their differences
// @Tags balances
// @Produce  json
// @Param   month query string false "Month (YYYY-MM)" default(current month)
// @Success 200 {array} dto.MonthCloseAuditResponse
// @Failure 400 {object} map[string]string "Invalid month format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list audits"
// @Security BearerAuth
// @Router /balances/audits [get]
func (h *balanceHandler) listAudits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	month, ok := parseMonthOrDefault(c, "month", domain.MonthOf(time.Now()))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format. Use YYYY-MM"})
		return
	}

	audits, err := h.monthCloseService.ListAudits(c.Request.Context(), userID, month)
	if err != nil {
		logger.Error("Failed to list audits", slog.String("error", err.Error()), slog.String("month", month.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audits"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthCloseAuditResponses(audits))
}
