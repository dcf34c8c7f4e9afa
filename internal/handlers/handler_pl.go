package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/faraway-yachting/charter-ledger/internal/apperrors"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
	"github.com/faraway-yachting/charter-ledger/internal/dto"
	"github.com/faraway-yachting/charter-ledger/internal/middleware"
)

// plHandler handles HTTP requests for income statements built from source
// documents.
type plHandler struct {
	plService portssvc.PLSvcFacade
}

// newPLHandler creates a new plHandler
func newPLHandler(ps portssvc.PLSvcFacade) *plHandler {
	return &plHandler{
		plService: ps,
	}
}

// registerPLRoutes registers profit-and-loss routes
func registerPLRoutes(rg *gin.RouterGroup, plService portssvc.PLSvcFacade) {
	h := newPLHandler(plService)

	reports := rg.Group("/reports")
	{
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/project-pl/:projectID", h.getProjectPL)
	}
}

// getProfitAndLoss godoc
// @Summary Generate company profit and loss report
// @Description Generates a company P&L for a date range. Income is gated by revenue recognition of each document's service period.
// @Tags reports
// @Produce json
// @Param companyId query string true "Company ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/profit-and-loss [get]
func (h *plHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID := c.Query("companyId")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyId query parameter required"})
		return
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to date must not precede from date"})
		return
	}

	report, err := h.plService.ProfitAndLoss(c.Request.Context(), companyID, from, to)
	if err != nil {
		logger.Error("Failed to generate profit and loss", slog.String("error", err.Error()), slog.String("company_id", companyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// getProjectPL godoc
// @Summary Generate project profit and loss report
// @Description Buckets one project's documents into the twelve fiscal months (November through October) of a fiscal year
// @Tags reports
// @Produce json
// @Param projectID path string true "Project ID"
// @Param fiscalYear query string true "Fiscal year label (YYYY-YYYY)"
// @Param managementFeePct query number false "Management fee percent" default(0)
// @Success 200 {object} domain.ProjectPLReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/project-pl/{projectID} [get]
func (h *plHandler) getProjectPL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	fiscalYear := c.Query("fiscalYear")
	if fiscalYear == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fiscalYear query parameter required"})
		return
	}

	feePct := decimal.Zero
	if feeStr := c.Query("managementFeePct"); feeStr != "" {
		parsed, err := decimal.NewFromString(feeStr)
		if err != nil || parsed.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid managementFeePct"})
			return
		}
		feePct = parsed
	}

	report, err := h.plService.ProjectPL(c.Request.Context(), projectID, fiscalYear, feePct)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to generate project P&L", slog.String("error", err.Error()), slog.String("project_id", projectID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
