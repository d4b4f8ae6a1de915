package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/application/service"
)

// DashboardHandler serves the portfolio dashboard.
type DashboardHandler struct {
	dashboard *appservice.DashboardAppService
}

// NewDashboardHandler creates the dashboard handler.
func NewDashboardHandler(dashboard *appservice.DashboardAppService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetDashboard returns the portfolio summary, exposure, buckets, alerts and
// work order counts.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	resp, err := h.dashboard.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
