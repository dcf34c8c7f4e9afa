package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/faraway-yachting/charter-ledger/internal/apperrors"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
	"github.com/faraway-yachting/charter-ledger/internal/dto"
	"github.com/faraway-yachting/charter-ledger/internal/middleware"
)

// recognitionHandler handles HTTP requests for the revenue recognition
// state machine.
type recognitionHandler struct {
	recognitionService portssvc.RecognitionSvcFacade
}

// newRecognitionHandler creates a new recognitionHandler
func newRecognitionHandler(rs portssvc.RecognitionSvcFacade) *recognitionHandler {
	return &recognitionHandler{
		recognitionService: rs,
	}
}

// registerRecognitionRoutes registers revenue recognition routes
func registerRecognitionRoutes(rg *gin.RouterGroup, recognitionService portssvc.RecognitionSvcFacade) {
	h := newRecognitionHandler(recognitionService)

	recognitions := rg.Group("/recognitions")
	{
		recognitions.POST("/", h.createRecognition)
		recognitions.GET("/", h.listRecognitions)
		recognitions.GET("/:recognitionID", h.getRecognition)
		recognitions.POST("/:recognitionID/recognize", h.recognize)
		recognitions.POST("/sweep", h.sweep)
	}
}

// createRecognition godoc
// @Summary Register deferred revenue for an income document
// @Description Creates a revenue recognition record; initial status follows the charter end date
// @Tags recognitions
// @Accept json
// @Produce json
// @Param recognition body dto.CreateRecognitionRequest true "Recognition record"
// @Success 201 {object} domain.RevenueRecognition
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create recognition"
// @Security BearerAuth
// @Router /recognitions/ [post]
func (h *recognitionHandler) createRecognition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRecognitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createRecognition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rec, err := h.recognitionService.CreateRecognition(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating recognition", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create recognition", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recognition"})
		}
		return
	}

	logger.Info("Recognition created", slog.String("recognition_id", rec.RecognitionID), slog.String("status", string(rec.Status)))
	c.JSON(http.StatusCreated, rec)
}

// getRecognition godoc
// @Summary Get a revenue recognition record
// @Tags recognitions
// @Produce json
// @Param recognitionID path string true "Recognition ID"
// @Success 200 {object} domain.RevenueRecognition
// @Failure 404 {object} map[string]string "Recognition not found"
// @Security BearerAuth
// @Router /recognitions/{recognitionID} [get]
func (h *recognitionHandler) getRecognition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recognitionID := c.Param("recognitionID")

	rec, err := h.recognitionService.GetRecognitionByID(c.Request.Context(), recognitionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recognition not found"})
			return
		}
		logger.Error("Failed to get recognition", slog.String("error", err.Error()), slog.String("recognition_id", recognitionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recognition"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// listRecognitions godoc
// @Summary List a company's revenue recognition records
// @Tags recognitions
// @Produce json
// @Param companyId query string true "Company ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} domain.RevenueRecognition
// @Failure 400 {object} map[string]string "Invalid request"
// @Security BearerAuth
// @Router /recognitions/ [get]
func (h *recognitionHandler) listRecognitions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID := c.Query("companyId")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyId query parameter required"})
		return
	}
	limit := parseIntDefault(c.Query("limit"), 50)
	offset := parseIntDefault(c.Query("offset"), 0)

	recs, err := h.recognitionService.ListRecognitions(c.Request.Context(), companyID, limit, offset)
	if err != nil {
		logger.Error("Failed to list recognitions", slog.String("error", err.Error()), slog.String("company_id", companyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recognitions"})
		return
	}

	c.JSON(http.StatusOK, recs)
}

// recognize godoc
// @Summary Recognize revenue for a record
// @Description Transitions a record to its terminal recognized state and posts the recognition entry. Re-recognition is rejected.
// @Tags recognitions
// @Accept json
// @Produce json
// @Param recognitionID path string true "Recognition ID"
// @Param trigger body dto.RecognizeRequest true "Recognition trigger"
// @Success 200 {object} domain.RevenueRecognition
// @Failure 400 {object} map[string]string "Service period not concluded or invalid trigger"
// @Failure 404 {object} map[string]string "Recognition not found"
// @Failure 409 {object} map[string]string "Already recognized"
// @Security BearerAuth
// @Router /recognitions/{recognitionID}/recognize [post]
func (h *recognitionHandler) recognize(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recognitionID := c.Param("recognitionID")

	var req dto.RecognizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for recognize", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rec, err := h.recognitionService.RecognizeRevenue(c.Request.Context(), recognitionID, actorID, req.Trigger)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recognition not found"})
		case errors.Is(err, apperrors.ErrState):
			logger.Warn("Attempt to re-recognize record", slog.String("recognition_id", recognitionID))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to recognize revenue", slog.String("error", err.Error()), slog.String("recognition_id", recognitionID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recognize revenue"})
		}
		return
	}

	logger.Info("Revenue recognized", slog.String("recognition_id", recognitionID), slog.String("status", string(rec.Status)))
	c.JSON(http.StatusOK, rec)
}

// sweep godoc
// @Summary Recognize all due pending records
// @Description Sweeps every PENDING record whose charter end date has passed; per-record failures are collected, not fatal
// @Tags recognitions
// @Produce json
// @Success 200 {object} dto.SweepResponse
// @Failure 500 {object} map[string]string "Sweep failed"
// @Security BearerAuth
// @Router /recognitions/sweep [post]
func (h *recognitionHandler) sweep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	now := time.Now()
	recognized, failed, err := h.recognitionService.RecognizeDue(c.Request.Context(), now, actorID)
	if err != nil {
		logger.Error("Recognition sweep failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sweep failed"})
		return
	}

	logger.Info("Recognition sweep completed", slog.Int("recognized", len(recognized)), slog.Int("failed", len(failed)))
	c.JSON(http.StatusOK, dto.SweepResponse{
		AsOf:       now.Format("2006-01-02"),
		Recognized: recognized,
		Failed:     failed,
	})
}
