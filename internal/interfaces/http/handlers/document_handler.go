package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/application/dto"
	appservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/application/service"
	apperrors "github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

// DocumentHandler serves document ingestion and lookup.
type DocumentHandler struct {
	documents *appservice.DocumentAppService
}

// NewDocumentHandler creates the document handler.
func NewDocumentHandler(documents *appservice.DocumentAppService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// Ingest handles POST /documents.
func (h *DocumentHandler) Ingest(c *gin.Context) {
	var req dto.IngestDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest.WithError(err))
		return
	}
	resp, err := h.documents.Ingest(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /documents/:id.
func (h *DocumentHandler) Get(c *gin.Context) {
	resp, err := h.documents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListByLease handles GET /leases/:id/documents.
func (h *DocumentHandler) ListByLease(c *gin.Context) {
	docs, err := h.documents.ListByLease(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}
