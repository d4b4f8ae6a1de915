package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/application/dto"
	appservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/application/service"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/infrastructure/monitoring"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
	apperrors "github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

// MaintenanceHandler serves the maintenance reporting and work order
// lifecycle endpoints.
type MaintenanceHandler struct {
	maintenance *appservice.MaintenanceAppService
	metrics     *monitoring.Metrics
}

// NewMaintenanceHandler creates the maintenance handler.
func NewMaintenanceHandler(maintenance *appservice.MaintenanceAppService, metrics *monitoring.Metrics) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance, metrics: metrics}
}

// Report handles POST /maintenance/report.
func (h *MaintenanceHandler) Report(c *gin.Context) {
	var req dto.ReportIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest.WithError(err))
		return
	}
	resp, err := h.maintenance.ReportIssue(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.RecordWorkOrderCreated(string(resp.WorkOrder.Priority), resp.WorkOrder.Category)
	}
	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /work-orders/:id.
func (h *MaintenanceHandler) Get(c *gin.Context) {
	resp, err := h.maintenance.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List handles GET /work-orders.
func (h *MaintenanceHandler) List(c *gin.Context) {
	filter := repository.WorkOrderFilter{
		PropertyID: c.Query("property_id"),
		Status:     constants.WorkOrderStatus(c.Query("status")),
		Priority:   constants.Priority(c.Query("priority")),
	}
	if limit := c.Query("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			filter.Limit = n
		}
	}
	if offset := c.Query("offset"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil {
			filter.Offset = n
		}
	}

	resp, err := h.maintenance.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Assign handles POST /work-orders/:id/assign.
func (h *MaintenanceHandler) Assign(c *gin.Context) {
	var req dto.AssignWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest.WithError(err))
		return
	}
	resp, err := h.maintenance.Assign(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Confirm handles POST /work-orders/:id/confirm.
func (h *MaintenanceHandler) Confirm(c *gin.Context) {
	resp, err := h.maintenance.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resolve handles POST /work-orders/:id/resolve.
func (h *MaintenanceHandler) Resolve(c *gin.Context) {
	resp, err := h.maintenance.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Escalate handles POST /work-orders/:id/escalate.
func (h *MaintenanceHandler) Escalate(c *gin.Context) {
	resp, err := h.maintenance.Escalate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.WorkOrdersEscalated.Inc()
	}
	c.JSON(http.StatusOK, resp)
}
