package repository

import (
	"context"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
)

// VendorRepository is the persistence contract for maintenance vendors.
type VendorRepository interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	GetByID(ctx context.Context, id string) (*models.Vendor, error)

	// ListByTrade returns active vendors registered for the given trade.
	ListByTrade(ctx context.Context, trade string) ([]models.Vendor, error)

	// ListActive returns all active vendors.
	ListActive(ctx context.Context) ([]models.Vendor, error)
}
