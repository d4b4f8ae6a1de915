package repository

import (
	"context"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
)

// PropertyRepository is the persistence contract for properties, spaces and
// occupiers. Name lookups are case-insensitive; the decision engine resolves
// free-text names extracted from maintenance reports.
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id string) (*models.Property, error)
	List(ctx context.Context) ([]models.Property, error)

	FindByName(ctx context.Context, name string) (*models.Property, error)
	FindSpace(ctx context.Context, propertyID, name string) (*models.Space, error)
	FindOccupier(ctx context.Context, name string) (*models.Occupier, error)
}
