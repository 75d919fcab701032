package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fadee/my_expenses_app/internal/apperrors"
	portssvc "github.com/fadee/my_expenses_app/internal/core/ports/services"
	"github.com/fadee/my_expenses_app/internal/core/services"
	"github.com/fadee/my_expenses_app/internal/dto"
	"github.com/fadee/my_expenses_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transferHandler handles HTTP requests related to balance/savings transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{
		transferService: ts,
	}
}

// registerTransferRoutes registers routes related to transfers.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("", h.listTransfers)
		transfers.GET("/:id", h.getTransfer)
		transfers.DELETE("/:id", h.deleteTransfer)
	}
}

// createTransfer godoc
// @Summary Transfer between money-on-hand and savings
// @Description Moves funds between the Balance and Savings accounts and writes the savings mirror row atomically
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create transfer"
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID))

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, services.ErrSameAccount) ||
			errors.Is(err, services.ErrAmountNotPositive) ||
			errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transfer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transfer"})
		}
		return
	}

	logger.Info("Transfer created successfully", slog.String("transfer_id", transfer.TransferID))
	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}

// listTransfers godoc
// @Summary List transfers
// @Description Lists the logged-in user's transfers, newest first
// @Tags transfers
// @Produce  json
// @Param   limit query int false "Maximum number of transfers" default(30)
// @Param   offset query int false "Pagination offset" default(0)
// @Success 200 {array} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transfers"
// @Security BearerAuth
// @Router /transfers [get]
func (h *transferHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransfersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listTransfers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transfers, err := h.transferService.ListTransfers(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to list transfers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transfers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponses(transfers))
}

// getTransfer godoc
// @Summary Get a transfer by ID
// @Description Retrieves a specific transfer owned by the logged-in user
// @Tags transfers
// @Produce  json
// @Param   id path string true "Transfer ID"
// @Success 200 {object} dto.TransferResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transfer not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transfer"
// @Security BearerAuth
// @Router /transfers/{id} [get]
func (h *transferHandler) getTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transferID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transfer, err := h.transferService.GetTransferByID(c.Request.Context(), userID, transferID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transfer not found", slog.String("transfer_id", transferID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Transfer not found"})
		} else {
			logger.Error("Failed to get transfer from service", slog.String("error", err.Error()), slog.String("transfer_id", transferID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transfer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// deleteTransfer godoc
// @Summary Delete a transfer
// @Description Deletes an unlocked transfer and its savings mirror row
// @Tags transfers
// @Produce  json
// @Param   id path string true "Transfer ID"
// @Success 204 "Transfer deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transfer not found"
// @Failure 409 {object} map[string]string "Transfer locked by a month close"
// @Failure 500 {object} map[string]string "Failed to delete transfer"
// @Security BearerAuth
// @Router /transfers/{id} [delete]
func (h *transferHandler) deleteTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transferID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.transferService.DeleteTransfer(c.Request.Context(), userID, transferID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transfer not found for delete", slog.String("transfer_id", transferID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Transfer not found"})
		} else if errors.Is(err, services.ErrRecordLocked) {
			logger.Warn("Attempt to delete locked transfer", slog.String("transfer_id", transferID))
			c.JSON(http.StatusConflict, gin.H{"error": "Transfer is locked by a month close"})
		} else {
			logger.Error("Failed to delete transfer in service", slog.String("error", err.Error()), slog.String("transfer_id", transferID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transfer"})
		}
		return
	}

	logger.Info("Transfer deleted successfully", slog.String("transfer_id", transferID))
	c.Status(http.StatusNoContent)
}
