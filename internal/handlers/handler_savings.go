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

// savingsHandler handles HTTP requests related to savings records.
type savingsHandler struct {
	savingsService portssvc.SavingsSvcFacade
}

// newSavingsHandler creates a new savingsHandler.
func newSavingsHandler(ss portssvc.SavingsSvcFacade) *savingsHandler {
	return &savingsHandler{
		savingsService: ss,
	}
}

// registerSavingsRoutes registers routes related to savings.
func registerSavingsRoutes(rg *gin.RouterGroup, savingsService portssvc.SavingsSvcFacade) {
	h := newSavingsHandler(savingsService)

	savings := rg.Group("/savings")
	{
		savings.POST("", h.createSavings)
		savings.POST("/initial", h.declareInitialSavings)
		savings.GET("", h.listSavings)
		savings.DELETE("/:id", h.deleteSavings)
	}
}

// createSavings godoc
// @Summary Record a savings movement
// @Description Creates a manual savings ledger row for the logged-in user
// @Tags savings
// @Accept  json
// @Produce  json
// @Param   savings body dto.CreateSavingsRequest true "Savings details"
// @Success 201 {object} dto.SavingsResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create savings record"
// @Security BearerAuth
// @Router /savings [post]
func (h *savingsHandler) createSavings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createSavings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	row, err := h.savingsService.CreateSavings(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating savings record", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create savings record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create savings record"})
		}
		return
	}

	logger.Info("Savings record created successfully", slog.String("savings_id", row.SavingsID))
	c.JSON(http.StatusCreated, dto.ToSavingsResponse(row))
}

// declareInitialSavings godoc
// @Summary Declare initial savings for a currency
// @Description Records the starting savings amount for a currency. Allowed once per currency.
// @Tags savings
// @Accept  json
// @Produce  json
// @Param   savings body dto.CreateSavingsRequest true "Initial savings details"
// @Success 201 {object} dto.SavingsResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Savings already declared for currency"
// @Failure 500 {object} map[string]string "Failed to declare initial savings"
// @Security BearerAuth
// @Router /savings/initial [post]
func (h *savingsHandler) declareInitialSavings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for declareInitialSavings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	row, err := h.savingsService.DeclareInitialSavings(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Initial savings already declared", slog.String("currency", req.Currency))
			c.JSON(http.StatusConflict, gin.H{"error": "Savings already declared for this currency"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error declaring initial savings", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to declare initial savings in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to declare initial savings"})
		}
		return
	}

	logger.Info("Initial savings declared successfully", slog.String("savings_id", row.SavingsID), slog.String("currency", row.Currency))
	c.JSON(http.StatusCreated, dto.ToSavingsResponse(row))
}

// listSavings godoc
// @Summary List savings records
// @Description Lists the logged-in user's savings rows for a month, newest first
// @Tags savings
// @Produce  json
// @Param   currency query string false "Filter by currency"
// @Param   month query string false "Month (YYYY-MM)" default(current month)
// @Success 200 {array} dto.SavingsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list savings"
// @Security BearerAuth
// @Router /savings [get]
func (h *savingsHandler) listSavings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSavingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listSavings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	month := domain.MonthOf(time.Now())
	if params.Month != "" {
		var err error
		month, err = domain.ParseMonth(params.Month)
		if err != nil {
			logger.Warn("Invalid month format", slog.String("month", params.Month))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format. Use YYYY-MM"})
			return
		}
	}

	rows, err := h.savingsService.ListSavings(c.Request.Context(), userID, params.Currency, month.Start(), month.End())
	if err != nil {
		logger.Error("Failed to list savings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list savings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingsResponses(rows))
}

// deleteSavings godoc
// @Summary Delete a savings record
// @Description Deletes an unlocked savings row. Rows mirroring a transfer must be removed via the transfer.
// @Tags savings
// @Produce  json
// @Param   id path string true "Savings ID"
// @Success 204 "Savings record deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Savings record not found"
// @Failure 409 {object} map[string]string "Record locked or mirrors a transfer"
// @Failure 500 {object} map[string]string "Failed to delete savings record"
// @Security BearerAuth
// @Router /savings/{id} [delete]
func (h *savingsHandler) deleteSavings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	savingsID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.savingsService.DeleteSavings(c.Request.Context(), userID, savingsID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Savings record not found for delete", slog.String("savings_id", savingsID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Savings record not found"})
		} else if errors.Is(err, services.ErrRecordLocked) || errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Savings record cannot be deleted", slog.String("savings_id", savingsID), slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete savings record in service", slog.String("error", err.Error()), slog.String("savings_id", savingsID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete savings record"})
		}
		return
	}

	logger.Info("Savings record deleted successfully", slog.String("savings_id", savingsID))
	c.Status(http.StatusNoContent)
}
