package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/application/dto"
	appservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/application/service"
	apperrors "github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

// QAHandler serves document Q&A.
type QAHandler struct {
	qa *appservice.QAAppService
}

// NewQAHandler creates the Q&A handler.
func NewQAHandler(qa *appservice.QAAppService) *QAHandler {
	return &QAHandler{qa: qa}
}

// Ask handles POST /qa/ask.
func (h *QAHandler) Ask(c *gin.Context) {
	var req dto.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest.WithError(err))
		return
	}
	resp, err := h.qa.Ask(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
