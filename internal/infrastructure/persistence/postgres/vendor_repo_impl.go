package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

type vendorRepo struct {
	db *gorm.DB
}

// NewVendorRepository creates the GORM-backed vendor repository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepo{db: db}
}

func (r *vendorRepo) Create(ctx context.Context, vendor *models.Vendor) error {
	if err := r.db.WithContext(ctx).Create(vendor).Error; err != nil {
		return errors.ErrDatabase.WithMessage("failed to create vendor").WithError(err)
	}
	return nil
}

func (r *vendorRepo) GetByID(ctx context.Context, id string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound.WithMessage("vendor not found: %s", id)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &vendor, nil
}

func (r *vendorRepo) ListByTrade(ctx context.Context, trade string) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).
		Where("LOWER(trade) = LOWER(?) AND active = ?", trade, true).
		Order("name").
		Find(&vendors).Error
	if err != nil {
		return nil, errors.ErrDatabase.WithMessage("failed to list vendors").WithError(err)
	}
	return vendors, nil
}

func (r *vendorRepo) ListActive(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("trade, name").
		Find(&vendors).Error
	if err != nil {
		return nil, errors.ErrDatabase.WithMessage("failed to list vendors").WithError(err)
	}
	return vendors, nil
}
