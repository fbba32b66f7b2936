package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"github.com/launchforge/launchforge-backend/internal/requestdata"
	"github.com/launchforge/launchforge-backend/internal/services"
)

type ScoringHandler struct {
	log            *logger.Logger
	aggregationSvc services.AggregationService
	statusSvc      services.JudgingStatusService
	reportSvc      services.ReportService
	submissionSvc  services.SubmissionService
}

func NewScoringHandler(log *logger.Logger, aggregationSvc services.AggregationService, statusSvc services.JudgingStatusService, reportSvc services.ReportService, submissionSvc services.SubmissionService) *ScoringHandler {
	return &ScoringHandler{
		log:            log.With("handler", "ScoringHandler"),
		aggregationSvc: aggregationSvc,
		statusSvc:      statusSvc,
		reportSvc:      reportSvc,
		submissionSvc:  submissionSvc,
	}
}

// GET /api/products/:id/score
func (h *ScoringHandler) GetScore(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	score, err := h.aggregationSvc.GetAggregate(c.Request.Context(), nil, productID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, score)
}

// GET /api/products/:id/status
func (h *ScoringHandler) GetStatus(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	status, err := h.statusSvc.StatusForProduct(c.Request.Context(), nil, productID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, status)
}

// GET /api/products/:id/chart
func (h *ScoringHandler) GetChart(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	chart, err := h.reportSvc.BuildChart(c.Request.Context(), nil, productID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, chart)
}

// GET /api/products/:id/report
func (h *ScoringHandler) GetReport(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	report, err := h.reportSvc.BuildReport(c.Request.Context(), nil, productID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, report)
}

// POST /api/products/:id/submissions
// The judge is the caller; exactly one of the three value fields must be set.
func (h *ScoringHandler) Submit(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var body struct {
		CriterionID  uuid.UUID `json:"criteria_id"`
		RatingValue  *int      `json:"rating_value"`
		BooleanValue *bool     `json:"boolean_value"`
		TextValue    *string   `json:"text_value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	var value types.SubmissionValue
	switch {
	case body.RatingValue != nil:
		value = types.RatingValue(*body.RatingValue)
	case body.BooleanValue != nil:
		value = types.BooleanValue(*body.BooleanValue)
	case body.TextValue != nil:
		value = types.TextValue(*body.TextValue)
	}

	submission, err := h.submissionSvc.Submit(c.Request.Context(), nil, rd.UserID, productID, body.CriterionID, value)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"submission": submission})
}
