package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

type leaseRepo struct {
	db *gorm.DB
}

// NewLeaseRepository creates the GORM-backed lease repository.
func NewLeaseRepository(db *gorm.DB) repository.LeaseRepository {
	return &leaseRepo{db: db}
}

func (r *leaseRepo) Create(ctx context.Context, lease *models.Lease) error {
	if err := r.db.WithContext(ctx).Create(lease).Error; err != nil {
		return errors.ErrDatabase.WithMessage("failed to create lease").WithError(err)
	}
	return nil
}

func (r *leaseRepo) GetByID(ctx context.Context, id string) (*models.Lease, error) {
	var lease models.Lease
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Documents").
		First(&lease, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrLeaseNotFound(id)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &lease, nil
}

func (r *leaseRepo) List(ctx context.Context, filter repository.LeaseFilter) ([]models.Lease, error) {
	var leases []models.Lease
	err := r.applyFilter(r.db.WithContext(ctx), filter).
		Preload("Property").
		Preload("Documents").
		Order("created_at").
		Find(&leases).Error
	if err != nil {
		return nil, errors.ErrDatabase.WithMessage("failed to list leases").WithError(err)
	}
	return leases, nil
}

func (r *leaseRepo) Update(ctx context.Context, lease *models.Lease) error {
	result := r.db.WithContext(ctx).Model(&models.Lease{}).
		Where("id = ?", lease.ID).
		Select("tenant_name", "property_id", "suite", "square_feet", "base_rent", "lease_start", "lease_end").
		Updates(lease)
	if result.Error != nil {
		return errors.ErrDatabase.WithMessage("failed to update lease").WithError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrLeaseNotFound(lease.ID)
	}
	return nil
}

func (r *leaseRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Lease{}, "id = ?", id)
	if result.Error != nil {
		return errors.ErrDatabase.WithMessage("failed to delete lease").WithError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrLeaseNotFound(id)
	}
	return nil
}

func (r *leaseRepo) Count(ctx context.Context, filter repository.LeaseFilter) (int64, error) {
	var count int64
	filter.Limit, filter.Offset = 0, 0
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.Lease{}), filter).Count(&count).Error
	if err != nil {
		return 0, errors.ErrDatabase.WithError(err)
	}
	return count, nil
}

func (r *leaseRepo) applyFilter(tx *gorm.DB, filter repository.LeaseFilter) *gorm.DB {
	if filter.PropertyID != "" {
		tx = tx.Where("property_id = ?", filter.PropertyID)
	}
	if filter.TenantName != "" {
		tx = tx.Where("LOWER(tenant_name) LIKE LOWER(?)", "%"+filter.TenantName+"%")
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		tx = tx.Offset(filter.Offset)
	}
	return tx
}
