package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/application/dto"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
	domainservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/service"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

// MaintenanceAppService orchestrates the maintenance flow: extraction of the
// report, entity resolution, the decision engine, persistence and event
// publishing, plus the work order lifecycle endpoints.
type MaintenanceAppService struct {
	extractor  MaintenanceExtractor
	engine     *domainservice.MaintenanceService
	workOrders repository.WorkOrderRepository
	properties repository.PropertyRepository
	events     domainservice.WorkOrderEventPublisher
	log        logger.Logger
	now        func() time.Time
}

// NewMaintenanceAppService creates the maintenance application service.
func NewMaintenanceAppService(
	extractor MaintenanceExtractor,
	engine *domainservice.MaintenanceService,
	workOrders repository.WorkOrderRepository,
	properties repository.PropertyRepository,
	events domainservice.WorkOrderEventPublisher,
	log logger.Logger,
) *MaintenanceAppService {
	return &MaintenanceAppService{
		extractor:  extractor,
		engine:     engine,
		workOrders: workOrders,
		properties: properties,
		events:     events,
		log:        log.WithComponent("maintenance_app_service"),
		now:        time.Now,
	}
}

// ReportIssue turns a free-text report into a persisted work order.
func (s *MaintenanceAppService) ReportIssue(ctx context.Context, req *dto.ReportIssueRequest) (*dto.WorkOrderResponse, error) {
	extraction, err := s.extractor.ExtractMaintenance(ctx, req.Text)
	if err != nil {
		return nil, err
	}

	property, space, occupier := s.resolveEntities(ctx, req, extraction)

	now := s.now()
	decision := s.engine.Decide(ctx, extraction, property, now)

	order := &models.WorkOrder{
		ID:                    uuid.New().String(),
		Category:              extraction.Category,
		Description:           extraction.Description,
		Priority:              decision.Priority,
		BusinessImpact:        decision.BusinessImpact,
		RequiresOwnerApproval: decision.RequiresOwnerApproval,
		EstimatedCost:         decision.EstimatedCost,
		MaxCost:               decision.MaxCost,
		SLAHours:              decision.SLAHours,
		DueAt:                 decision.DueAt,
		Status:                constants.WorkOrderStatusNew,
		FollowUps:             decision.FollowUps,
	}
	if order.Description == "" {
		order.Description = req.Text
	}
	if property != nil {
		order.PropertyID = &property.ID
	}
	if space != nil {
		order.SpaceID = &space.ID
	}
	if occupier != nil {
		order.OccupierID = &occupier.ID
	}
	if decision.Vendor != nil {
		// A preferred vendor skips the NEW holding state.
		order.VendorID = &decision.Vendor.ID
		order.Vendor = decision.Vendor
		order.Status = constants.WorkOrderStatusAssigned
	}

	if err := s.workOrders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publishCreated(ctx, order)

	s.log.Info(ctx, "work order created",
		logger.String("work_order_id", order.ID),
		logger.String("priority", string(order.Priority)),
		logger.String("category", order.Category))

	return &dto.WorkOrderResponse{WorkOrder: order}, nil
}

// Get fetches one work order.
func (s *MaintenanceAppService) Get(ctx context.Context, id string) (*dto.WorkOrderResponse, error) {
	order, err := s.workOrders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.WorkOrderResponse{WorkOrder: order}, nil
}

// List returns work orders matching the filter.
func (s *MaintenanceAppService) List(ctx context.Context, filter repository.WorkOrderFilter) (*dto.WorkOrderListResponse, error) {
	orders, err := s.workOrders.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.WorkOrderListResponse{WorkOrders: orders}, nil
}

// Assign sets the vendor on an open work order.
func (s *MaintenanceAppService) Assign(ctx context.Context, id string, req *dto.AssignWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	return s.transition(ctx, id, func(order *models.WorkOrder) error {
		return order.Assign(req.VendorID)
	})
}

// Confirm records the vendor's acceptance.
func (s *MaintenanceAppService) Confirm(ctx context.Context, id string) (*dto.WorkOrderResponse, error) {
	return s.transition(ctx, id, func(order *models.WorkOrder) error {
		return order.Confirm()
	})
}

// Resolve closes a work order as fixed.
func (s *MaintenanceAppService) Resolve(ctx context.Context, id string) (*dto.WorkOrderResponse, error) {
	return s.transition(ctx, id, func(order *models.WorkOrder) error {
		return order.Resolve(s.now())
	})
}

// Escalate marks a work order as having exceeded its SLA.
func (s *MaintenanceAppService) Escalate(ctx context.Context, id string) (*dto.WorkOrderResponse, error) {
	return s.transition(ctx, id, func(order *models.WorkOrder) error {
		return order.Escalate()
	})
}

// EscalateOverdue sweeps open work orders past their due time and escalates
// them. Returns the number escalated; individual failures are logged and
// skipped so one bad row cannot stall the sweep.
func (s *MaintenanceAppService) EscalateOverdue(ctx context.Context) (int, error) {
	overdue, err := s.workOrders.ListOverdue(ctx, s.now())
	if err != nil {
		return 0, err
	}

	escalated := 0
	for i := range overdue {
		order := &overdue[i]
		if err := order.Escalate(); err != nil {
			continue
		}
		if err := s.workOrders.Update(ctx, order); err != nil {
			s.log.Error(ctx, "failed to persist escalation", err,
				logger.String("work_order_id", order.ID))
			continue
		}
		s.publishStatusChanged(ctx, order)
		escalated++
	}

	if escalated > 0 {
		s.log.Info(ctx, "escalated overdue work orders", logger.Int("count", escalated))
	}
	return escalated, nil
}

func (s *MaintenanceAppService) transition(ctx context.Context, id string, apply func(*models.WorkOrder) error) (*dto.WorkOrderResponse, error) {
	order, err := s.workOrders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(order); err != nil {
		return nil, err
	}
	if err := s.workOrders.Update(ctx, order); err != nil {
		return nil, err
	}
	s.publishStatusChanged(ctx, order)
	return &dto.WorkOrderResponse{WorkOrder: order}, nil
}

// resolveEntities matches extracted names against the directory. Resolution
// is best effort: unmatched names leave the corresponding reference empty.
func (s *MaintenanceAppService) resolveEntities(ctx context.Context, req *dto.ReportIssueRequest, extraction *models.MaintenanceExtraction) (*models.Property, *models.Space, *models.Occupier) {
	var property *models.Property

	if req.PropertyID != "" {
		if p, err := s.properties.GetByID(ctx, req.PropertyID); err == nil {
			property = p
		}
	}
	if property == nil && extraction.PropertyName != "" {
		if p, err := s.properties.FindByName(ctx, extraction.PropertyName); err == nil {
			property = p
		}
	}

	var space *models.Space
	if property != nil && extraction.SpaceName != "" {
		if sp, err := s.properties.FindSpace(ctx, property.ID, extraction.SpaceName); err == nil {
			space = sp
		}
	}

	var occupier *models.Occupier
	if extraction.OccupierName != "" {
		if o, err := s.properties.FindOccupier(ctx, extraction.OccupierName); err == nil {
			occupier = o
		}
	}

	return property, space, occupier
}

// Event publishing is best effort: broker failures are logged, never
// surfaced to the caller.

func (s *MaintenanceAppService) publishCreated(ctx context.Context, order *models.WorkOrder) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCreated(ctx, order); err != nil {
		s.log.Warn(ctx, "work order event publish failed",
			logger.String("work_order_id", order.ID), logger.Error(err))
	}
}

func (s *MaintenanceAppService) publishStatusChanged(ctx context.Context, order *models.WorkOrder) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishStatusChanged(ctx, order); err != nil {
		s.log.Warn(ctx, "work order event publish failed",
			logger.String("work_order_id", order.ID), logger.Error(err))
	}
}
