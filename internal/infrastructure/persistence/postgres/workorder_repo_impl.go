package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

type workOrderRepo struct {
	db *gorm.DB
}

// NewWorkOrderRepository creates the GORM-backed work order repository.
func NewWorkOrderRepository(db *gorm.DB) repository.WorkOrderRepository {
	return &workOrderRepo{db: db}
}

func (r *workOrderRepo) Create(ctx context.Context, order *models.WorkOrder) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return errors.ErrDatabase.WithMessage("failed to create work order").WithError(err)
	}
	return nil
}

func (r *workOrderRepo) GetByID(ctx context.Context, id string) (*models.WorkOrder, error) {
	var order models.WorkOrder
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrWorkOrderNotFound(id)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &order, nil
}

func (r *workOrderRepo) List(ctx context.Context, filter repository.WorkOrderFilter) ([]models.WorkOrder, error) {
	tx := r.db.WithContext(ctx).Preload("Vendor")
	if filter.PropertyID != "" {
		tx = tx.Where("property_id = ?", filter.PropertyID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		tx = tx.Where("priority = ?", filter.Priority)
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		tx = tx.Offset(filter.Offset)
	}

	var orders []models.WorkOrder
	if err := tx.Order("due_at").Find(&orders).Error; err != nil {
		return nil, errors.ErrDatabase.WithMessage("failed to list work orders").WithError(err)
	}
	return orders, nil
}

func (r *workOrderRepo) Update(ctx context.Context, order *models.WorkOrder) error {
	result := r.db.WithContext(ctx).Model(&models.WorkOrder{}).
		Where("id = ?", order.ID).
		Select("status", "vendor_id", "resolved_at", "follow_ups", "updated_at").
		Updates(order)
	if result.Error != nil {
		return errors.ErrDatabase.WithMessage("failed to update work order").WithError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrWorkOrderNotFound(order.ID)
	}
	return nil
}

func (r *workOrderRepo) ListOverdue(ctx context.Context, now time.Time) ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := r.db.WithContext(ctx).
		Where("due_at < ?", now).
		Where("status IN ?", []constants.WorkOrderStatus{
			constants.WorkOrderStatusNew,
			constants.WorkOrderStatusAssigned,
			constants.WorkOrderStatusInProgress,
		}).
		Order("due_at").
		Find(&orders).Error
	if err != nil {
		return nil, errors.ErrDatabase.WithMessage("failed to list overdue work orders").WithError(err)
	}
	return orders, nil
}
