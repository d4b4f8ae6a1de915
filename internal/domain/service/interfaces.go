// Package service contains the domain services: the portfolio risk
// aggregator and the maintenance decision engine. Both are pure with respect
// to I/O; collaborators defined here are implemented by the infrastructure
// layer and injected.
package service

import (
	"context"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
)

// LLMClient is the minimal language model surface the service depends on.
// Implementations wrap a concrete provider client.
type LLMClient interface {
	// Complete sends a single prompt and returns the model's text response.
	Complete(ctx context.Context, prompt string) (string, error)
}

// VendorDirectory resolves the preferred vendor for a maintenance trade.
type VendorDirectory interface {
	// PreferredVendor returns the active vendor for the trade, or nil when
	// no vendor is registered for it.
	PreferredVendor(ctx context.Context, trade string) (*models.Vendor, error)
}

// WorkOrderEventPublisher emits work order lifecycle events to downstream
// consumers. Publish failures must not fail the originating request.
type WorkOrderEventPublisher interface {
	PublishCreated(ctx context.Context, order *models.WorkOrder) error
	PublishStatusChanged(ctx context.Context, order *models.WorkOrder) error
}

// SecretSource fetches secrets at startup, e.g. the language model API key.
type SecretSource interface {
	Get(ctx context.Context, path, key string) (string, error)
}

// AlertBuilder turns assessed lease rows into dashboard alerts.
type AlertBuilder interface {
	Build(inputs []models.AlertInput) []models.Alert
}
