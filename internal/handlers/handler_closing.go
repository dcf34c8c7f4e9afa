package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faraway-yachting/charter-ledger/internal/apperrors"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
	"github.com/faraway-yachting/charter-ledger/internal/dto"
	"github.com/faraway-yachting/charter-ledger/internal/middleware"
)

// closingHandler handles HTTP requests for prior-year closing entry imports.
type closingHandler struct {
	closingService portssvc.ClosingSvcFacade
}

// newClosingHandler creates a new closingHandler
func newClosingHandler(cs portssvc.ClosingSvcFacade) *closingHandler {
	return &closingHandler{
		closingService: cs,
	}
}

// registerClosingRoutes registers closing entry routes
func registerClosingRoutes(rg *gin.RouterGroup, closingService portssvc.ClosingSvcFacade) {
	h := newClosingHandler(closingService)

	closing := rg.Group("/closing")
	{
		closing.POST("/prior-year", h.importPriorYear)
	}
}

// importPriorYear godoc
// @Summary Import prior-year closing entries
// @Description Converts historical aggregate project P&L into posted closing entries dated on the fiscal year end
// @Tags closing
// @Accept json
// @Produce json
// @Param import body dto.PriorYearImportRequest true "Prior-year totals per project"
// @Success 201 {object} dto.PriorYearImportResult
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Import failed"
// @Security BearerAuth
// @Router /closing/prior-year [post]
func (h *closingHandler) importPriorYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PriorYearImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for importPriorYear", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.closingService.ImportPriorYear(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error importing prior year", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to import prior year", slog.String("error", err.Error()), slog.String("fiscal_year", req.FiscalYear))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed"})
		}
		return
	}

	logger.Info("Prior-year import completed",
		slog.String("fiscal_year", result.FiscalYear),
		slog.Int("entries", len(result.Entries)),
		slog.Int("skipped", len(result.SkippedProjects)),
	)
	c.JSON(http.StatusCreated, result)
}
