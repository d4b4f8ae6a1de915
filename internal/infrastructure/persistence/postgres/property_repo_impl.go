package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

type propertyRepo struct {
	db *gorm.DB
}

// NewPropertyRepository creates the GORM-backed property repository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, property *models.Property) error {
	if err := r.db.WithContext(ctx).Create(property).Error; err != nil {
		return errors.ErrDatabase.WithMessage("failed to create property").WithError(err)
	}
	return nil
}

func (r *propertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	err := r.db.WithContext(ctx).
		Preload("Spaces").
		First(&property, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound.WithMessage("property not found: %s", id)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &property, nil
}

func (r *propertyRepo) List(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	if err := r.db.WithContext(ctx).Order("name").Find(&properties).Error; err != nil {
		return nil, errors.ErrDatabase.WithMessage("failed to list properties").WithError(err)
	}
	return properties, nil
}

func (r *propertyRepo) FindByName(ctx context.Context, name string) (*models.Property, error) {
	var property models.Property
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound.WithMessage("property not found: %s", name)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &property, nil
}

func (r *propertyRepo) FindSpace(ctx context.Context, propertyID, name string) (*models.Space, error) {
	var space models.Space
	err := r.db.WithContext(ctx).
		Where("property_id = ? AND LOWER(name) = LOWER(?)", propertyID, name).
		First(&space).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound.WithMessage("space not found: %s", name)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &space, nil
}

func (r *propertyRepo) FindOccupier(ctx context.Context, name string) (*models.Occupier, error) {
	var occupier models.Occupier
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&occupier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound.WithMessage("occupier not found: %s", name)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &occupier, nil
}
