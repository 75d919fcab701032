package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fadee/my_expenses_app/internal/apperrors"
	portssvc "github.com/fadee/my_expenses_app/internal/core/ports/services"
	"github.com/fadee/my_expenses_app/internal/dto"
	"github.com/fadee/my_expenses_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryTypeHandler handles HTTP requests related to entry classifications.
type entryTypeHandler struct {
	entryTypeService portssvc.EntryTypeSvcFacade
}

// newEntryTypeHandler creates a new entryTypeHandler.
func newEntryTypeHandler(ets portssvc.EntryTypeSvcFacade) *entryTypeHandler {
	return &entryTypeHandler{
		entryTypeService: ets,
	}
}

// registerEntryTypeRoutes registers routes related to entry types.
func registerEntryTypeRoutes(rg *gin.RouterGroup, entryTypeService portssvc.EntryTypeSvcFacade) {
	h := newEntryTypeHandler(entryTypeService)

	types := rg.Group("/types")
	{
		types.POST("", h.createEntryType)
		types.GET("", h.listEntryTypes)
		types.GET("/:id", h.getEntryType)
		types.DELETE("/:id", h.deleteEntryType)
	}
}

// createEntryType godoc
// @Summary Create an entry type
// @Description Creates a new income or expense classification for the logged-in user
// @Tags types
// @Accept  json
// @Produce  json
// @Param   type body dto.CreateEntryTypeRequest true "Type details"
// @Success 201 {object} dto.EntryTypeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Type name already exists"
// @Failure 500 {object} map[string]string "Failed to create type"
// @Security BearerAuth
// @Router /types [post]
func (h *entryTypeHandler) createEntryType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntryTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntryType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entryType, err := h.entryTypeService.CreateEntryType(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate entry type name", slog.String("name", req.Name))
			c.JSON(http.StatusConflict, gin.H{"error": "A type with this name already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating entry type", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create entry type in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create type"})
		}
		return
	}

	logger.Info("Entry type created successfully", slog.String("type_id", entryType.TypeID))
	c.JSON(http.StatusCreated, dto.ToEntryTypeResponse(entryType))
}

// listEntryTypes godoc
// @Summary List entry types
// @Description Lists the logged-in user's classifications
// @Tags types
// @Produce  json
// @Param   limit query int false "Maximum number of types" default(30)
// @Param   offset query int false "Pagination offset" default(0)
// @Success 200 {array} dto.EntryTypeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list types"
// @Security BearerAuth
// @Router /types [get]
func (h *entryTypeHandler) listEntryTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEntryTypesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listEntryTypes", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	types, err := h.entryTypeService.ListEntryTypes(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to list entry types from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list types"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryTypeResponses(types))
}

// getEntryType godoc
// @Summary Get an entry type by ID
// @Description Retrieves a specific classification owned by the logged-in user
// @Tags types
// @Produce  json
// @Param   id path string true "Type ID"
// @Success 200 {object} dto.EntryTypeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Type not found"
// @Failure 500 {object} map[string]string "Failed to retrieve type"
// @Security BearerAuth
// @Router /types/{id} [get]
func (h *entryTypeHandler) getEntryType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	typeID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entryType, err := h.entryTypeService.GetEntryTypeByID(c.Request.Context(), userID, typeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Entry type not found", slog.String("type_id", typeID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Type not found"})
		} else {
			logger.Error("Failed to get entry type from service", slog.String("error", err.Error()), slog.String("type_id", typeID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve type"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryTypeResponse(entryType))
}

// deleteEntryType godoc
// @Summary Delete an entry type
// @Description Deletes a classification that has no entries referencing it
// @Tags types
// @Produce  json
// @Param   id path string true "Type ID"
// @Success 204 "Type deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Type not found"
// @Failure 409 {object} map[string]string "Type still referenced by entries"
// @Failure 500 {object} map[string]string "Failed to delete type"
// @Security BearerAuth
// @Router /types/{id} [delete]
func (h *entryTypeHandler) deleteEntryType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	typeID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.entryTypeService.DeleteEntryType(c.Request.Context(), userID, typeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Entry type not found for delete", slog.String("type_id", typeID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Type not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Entry type still referenced", slog.String("type_id", typeID))
			c.JSON(http.StatusConflict, gin.H{"error": "Type is still referenced by entries"})
		} else {
			logger.Error("Failed to delete entry type in service", slog.String("error", err.Error()), slog.String("type_id", typeID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete type"})
		}
		return
	}

	logger.Info("Entry type deleted successfully", slog.String("type_id", typeID))
	c.Status(http.StatusNoContent)
}
