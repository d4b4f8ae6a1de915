package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/application/dto"
	appservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/application/service"
	apperrors "github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

// LeaseHandler serves lease CRUD.
type LeaseHandler struct {
	leases *appservice.LeaseAppService
}

// NewLeaseHandler creates the lease handler.
func NewLeaseHandler(leases *appservice.LeaseAppService) *LeaseHandler {
	return &LeaseHandler{leases: leases}
}

// Create handles POST /leases.
func (h *LeaseHandler) Create(c *gin.Context) {
	var req dto.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest.WithError(err))
		return
	}
	resp, err := h.leases.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /leases/:id.
func (h *LeaseHandler) Get(c *gin.Context) {
	resp, err := h.leases.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List handles GET /leases.
func (h *LeaseHandler) List(c *gin.Context) {
	var req dto.ListLeasesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest.WithError(err))
		return
	}
	resp, err := h.leases.List(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /leases/:id.
func (h *LeaseHandler) Update(c *gin.Context) {
	var req dto.UpdateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest.WithError(err))
		return
	}
	resp, err := h.leases.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /leases/:id.
func (h *LeaseHandler) Delete(c *gin.Context) {
	if err := h.leases.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
