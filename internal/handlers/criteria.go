package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"github.com/launchforge/launchforge-backend/internal/services"
)

type CriteriaHandler struct {
	log         *logger.Logger
	criteriaSvc services.CriteriaService
}

func NewCriteriaHandler(log *logger.Logger, criteriaSvc services.CriteriaService) *CriteriaHandler {
	return &CriteriaHandler{
		log:         log.With("handler", "CriteriaHandler"),
		criteriaSvc: criteriaSvc,
	}
}

// GET /api/admin/criteria
func (h *CriteriaHandler) ListCriteria(c *gin.Context) {
	criteria, err := h.criteriaSvc.ListCriteria(c.Request.Context(), nil)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"criteria": criteria})
}

// POST /api/admin/criteria
func (h *CriteriaHandler) CreateCriterion(c *gin.Context) {
	var input services.CriterionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	criterion, err := h.criteriaSvc.CreateCriterion(c.Request.Context(), nil, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"criterion": criterion})
}

// PUT /api/admin/criteria/:id
func (h *CriteriaHandler) UpdateCriterion(c *gin.Context) {
	criterionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var input services.CriterionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	criterion, err := h.criteriaSvc.UpdateCriterion(c.Request.Context(), nil, criterionID, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"criterion": criterion})
}

// DELETE /api/admin/criteria/:id
func (h *CriteriaHandler) DeleteCriterion(c *gin.Context) {
	criterionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.criteriaSvc.DeleteCriterion(c.Request.Context(), nil, criterionID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
