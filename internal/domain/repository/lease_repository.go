// Package repository defines persistence interfaces for the domain layer.
// Implementations live under internal/infrastructure/persistence.
package repository

import (
	"context"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
)

// LeaseFilter narrows lease listings. Zero values mean "no constraint".
type LeaseFilter struct {
	PropertyID string
	TenantName string
	Limit      int
	Offset     int
}

// LeaseRepository is the persistence contract for leases.
type LeaseRepository interface {
	// Create persists a new lease.
	Create(ctx context.Context, lease *models.Lease) error

	// GetByID fetches one lease with its property and documents preloaded.
	GetByID(ctx context.Context, id string) (*models.Lease, error)

	// List returns leases matching the filter, property and documents preloaded.
	List(ctx context.Context, filter LeaseFilter) ([]models.Lease, error)

	// Update persists changes to an existing lease.
	Update(ctx context.Context, lease *models.Lease) error

	// Delete removes a lease by ID.
	Delete(ctx context.Context, id string) error

	// Count returns the number of leases matching the filter.
	Count(ctx context.Context, filter LeaseFilter) (int64, error)
}
