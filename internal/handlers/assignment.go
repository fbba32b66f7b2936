package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"github.com/launchforge/launchforge-backend/internal/requestdata"
	"github.com/launchforge/launchforge-backend/internal/services"
)

type AssignmentHandler struct {
	log           *logger.Logger
	assignmentSvc services.AssignmentService
}

func NewAssignmentHandler(log *logger.Logger, assignmentSvc services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		log:           log.With("handler", "AssignmentHandler"),
		assignmentSvc: assignmentSvc,
	}
}

// POST /api/admin/products/:id/judges
func (h *AssignmentHandler) AssignJudges(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var body struct {
		JudgeIDs []uuid.UUID `json:"judge_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	var assignedBy *uuid.UUID
	if rd := requestdata.GetRequestData(c.Request.Context()); rd != nil && rd.UserID != uuid.Nil {
		assignedBy = &rd.UserID
	}

	assignments, err := h.assignmentSvc.AssignJudges(c.Request.Context(), nil, productID, body.JudgeIDs, assignedBy)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"assignments": assignments})
}

// POST /api/admin/judges/:id/products
func (h *AssignmentHandler) AssignProducts(c *gin.Context) {
	judgeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var body struct {
		ProductIDs []uuid.UUID `json:"product_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	var assignedBy *uuid.UUID
	if rd := requestdata.GetRequestData(c.Request.Context()); rd != nil && rd.UserID != uuid.Nil {
		assignedBy = &rd.UserID
	}

	assignments, err := h.assignmentSvc.AssignProducts(c.Request.Context(), nil, judgeID, body.ProductIDs, assignedBy)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"assignments": assignments})
}

// GET /api/admin/products/:id/judges
func (h *AssignmentHandler) ListForProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	assignments, err := h.assignmentSvc.ListForProduct(c.Request.Context(), nil, productID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"assignments": assignments})
}

// GET /api/judges/:id/assignments
func (h *AssignmentHandler) ListForJudge(c *gin.Context) {
	judgeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	assignments, err := h.assignmentSvc.ListForJudge(c.Request.Context(), nil, judgeID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"assignments": assignments})
}

// GET /api/admin/products/:id/available-judges
func (h *AssignmentHandler) AvailableJudges(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	judges, err := h.assignmentSvc.AvailableJudges(c.Request.Context(), nil, productID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"judges": judges})
}

// DELETE /api/admin/assignments/:id
func (h *AssignmentHandler) RemoveAssignment(c *gin.Context) {
	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.assignmentSvc.RemoveAssignment(c.Request.Context(), nil, assignmentID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
