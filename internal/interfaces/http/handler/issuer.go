package handler

import (
	billingapp "github.com/factura/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
)

// IssuerHandler handles issuer profile API endpoints
type IssuerHandler struct {
	BaseHandler
	issuerService *billingapp.IssuerService
}

// NewIssuerHandler creates a new IssuerHandler
func NewIssuerHandler(issuerService *billingapp.IssuerService) *IssuerHandler {
	return &IssuerHandler{
		issuerService: issuerService,
	}
}

// Get handles GET /billing/issuer
func (h *IssuerHandler) Get(c *gin.Context) {
	profile, err := h.issuerService.GetProfile(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}

// Update handles PUT /billing/issuer
func (h *IssuerHandler) Update(c *gin.Context) {
	var req billingapp.UpdateIssuerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	profile, err := h.issuerService.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}
