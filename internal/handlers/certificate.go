package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"github.com/launchforge/launchforge-backend/internal/services"
)

type CertificateHandler struct {
	log            *logger.Logger
	certificateSvc services.CertificateService
	exportSvc      services.ExportService
}

func NewCertificateHandler(log *logger.Logger, certificateSvc services.CertificateService, exportSvc services.ExportService) *CertificateHandler {
	return &CertificateHandler{
		log:            log.With("handler", "CertificateHandler"),
		certificateSvc: certificateSvc,
		exportSvc:      exportSvc,
	}
}

// GET /api/products/:id/certificate?page=1
// Serves one rendered page of the two-page certificate document as PNG.
func (h *CertificateHandler) GetCertificate(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			page = p
		}
	}

	pages, err := h.certificateSvc.RenderCertificate(c.Request.Context(), nil, productID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	if page < 1 || page > len(pages) {
		RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("page must be between 1 and %d", len(pages)))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="certificate_%d.png"`, page))
	c.Data(http.StatusOK, "image/png", pages[page-1])
}

// GET /api/admin/products/:id/results.xlsx
func (h *CertificateHandler) ExportResults(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	buf, filename, err := h.exportSvc.ExportProductResults(c.Request.Context(), nil, productID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// GET /api/admin/products/:id/assignments.xlsx
func (h *CertificateHandler) ExportAssignments(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	buf, filename, err := h.exportSvc.ExportAssignments(c.Request.Context(), nil, productID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
