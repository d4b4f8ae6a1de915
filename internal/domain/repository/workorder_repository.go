package repository

import (
	"context"
	"time"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
)

// WorkOrderFilter narrows work order listings.
type WorkOrderFilter struct {
	PropertyID string
	Status     constants.WorkOrderStatus
	Priority   constants.Priority
	Limit      int
	Offset     int
}

// WorkOrderRepository is the persistence contract for work orders.
type WorkOrderRepository interface {
	Create(ctx context.Context, order *models.WorkOrder) error
	GetByID(ctx context.Context, id string) (*models.WorkOrder, error)
	List(ctx context.Context, filter WorkOrderFilter) ([]models.WorkOrder, error)
	Update(ctx context.Context, order *models.WorkOrder) error

	// ListOverdue returns open orders whose due time has passed. The SLA
	// sweeper uses this to escalate.
	ListOverdue(ctx context.Context, now time.Time) ([]models.WorkOrder, error)
}
