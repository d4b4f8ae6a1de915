// Package handlers implements the HTTP endpoints.
package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

// respondError writes the error as JSON with its mapped status code.
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), apperrors.ToResponse(err))
}
