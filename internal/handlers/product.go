package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"github.com/launchforge/launchforge-backend/internal/requestdata"
	"github.com/launchforge/launchforge-backend/internal/services"
)

type ProductHandler struct {
	log        *logger.Logger
	productSvc services.ProductService
}

func NewProductHandler(log *logger.Logger, productSvc services.ProductService) *ProductHandler {
	return &ProductHandler{
		log:        log.With("handler", "ProductHandler"),
		productSvc: productSvc,
	}
}

// GET /api/products?status=approved
func (h *ProductHandler) ListProducts(c *gin.Context) {
	status := c.DefaultQuery("status", "approved")
	products, err := h.productSvc.ListByStatus(c.Request.Context(), nil, status)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"products": products})
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	product, err := h.productSvc.GetProduct(c.Request.Context(), nil, productID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"product": product})
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	product, err := h.productSvc.CreateProduct(c.Request.Context(), nil, rd.UserID, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// PATCH /api/admin/products/:id/status
func (h *ProductHandler) SetStatus(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.productSvc.SetStatus(c.Request.Context(), nil, productID, body.Status); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
