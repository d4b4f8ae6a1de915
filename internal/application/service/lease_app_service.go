package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/application/dto"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
	domainservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/service"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

const dashboardCacheKey = "dashboard:summary"

// LeaseAppService implements lease CRUD and per-lease risk lookups.
type LeaseAppService struct {
	leases    repository.LeaseRepository
	portfolio *domainservice.PortfolioService
	cache     Cache
	log       logger.Logger
	now       func() time.Time
}

// NewLeaseAppService creates the lease application service.
func NewLeaseAppService(leases repository.LeaseRepository, portfolio *domainservice.PortfolioService, cache Cache, log logger.Logger) *LeaseAppService {
	return &LeaseAppService{
		leases:    leases,
		portfolio: portfolio,
		cache:     cache,
		log:       log.WithComponent("lease_app_service"),
		now:       time.Now,
	}
}

// Create persists a new lease from the request.
func (s *LeaseAppService) Create(ctx context.Context, req *dto.CreateLeaseRequest) (*dto.LeaseResponse, error) {
	lease := &models.Lease{
		ID:         uuid.New().String(),
		TenantName: req.TenantName,
		PropertyID: req.PropertyID,
		Suite:      req.Suite,
		SquareFeet: req.SquareFeet,
		BaseRent:   req.BaseRent,
	}

	var err error
	if lease.LeaseStart, err = parseDate(req.LeaseStart); err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage("invalid lease_start: %s", req.LeaseStart)
	}
	if lease.LeaseEnd, err = parseDate(req.LeaseEnd); err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage("invalid lease_end: %s", req.LeaseEnd)
	}
	if lease.LeaseStart != nil && lease.LeaseEnd != nil && lease.LeaseEnd.Before(*lease.LeaseStart) {
		return nil, errors.ErrInvalidRequest.WithMessage("lease_end precedes lease_start")
	}

	if err := s.leases.Create(ctx, lease); err != nil {
		return nil, err
	}
	s.invalidateDashboard(ctx)

	s.log.Info(ctx, "lease created",
		logger.String("lease_id", lease.ID), logger.String("tenant", lease.TenantName))

	return s.respond(ctx, lease)
}

// Get fetches one lease with its risk assessment.
func (s *LeaseAppService) Get(ctx context.Context, id string) (*dto.LeaseResponse, error) {
	lease, err := s.leases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, lease)
}

// List returns leases matching the filter, each with its risk assessment.
func (s *LeaseAppService) List(ctx context.Context, req *dto.ListLeasesRequest) (*dto.LeaseListResponse, error) {
	filter := repository.LeaseFilter{
		PropertyID: req.PropertyID,
		TenantName: req.TenantName,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}

	leases, err := s.leases.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.leases.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	avg := averageSquareFeet(leases)
	today := s.now()

	resp := &dto.LeaseListResponse{Total: total, Leases: make([]dto.LeaseResponse, 0, len(leases))}
	for i := range leases {
		resp.Leases = append(resp.Leases, dto.LeaseResponse{
			Lease: leases[i],
			Risk:  s.portfolio.ScoreLease(&leases[i], avg, today),
		})
	}
	return resp, nil
}

// Update applies a partial update to a lease.
func (s *LeaseAppService) Update(ctx context.Context, id string, req *dto.UpdateLeaseRequest) (*dto.LeaseResponse, error) {
	lease, err := s.leases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TenantName != nil {
		lease.TenantName = *req.TenantName
	}
	if req.Suite != nil {
		lease.Suite = *req.Suite
	}
	if req.SquareFeet != nil {
		lease.SquareFeet = *req.SquareFeet
	}
	if req.BaseRent != nil {
		lease.BaseRent = *req.BaseRent
	}
	if req.LeaseStart != nil {
		if lease.LeaseStart, err = parseDate(*req.LeaseStart); err != nil {
			return nil, errors.ErrInvalidRequest.WithMessage("invalid lease_start: %s", *req.LeaseStart)
		}
	}
	if req.LeaseEnd != nil {
		if lease.LeaseEnd, err = parseDate(*req.LeaseEnd); err != nil {
			return nil, errors.ErrInvalidRequest.WithMessage("invalid lease_end: %s", *req.LeaseEnd)
		}
	}

	if err := s.leases.Update(ctx, lease); err != nil {
		return nil, err
	}
	s.invalidateDashboard(ctx)

	return s.respond(ctx, lease)
}

// Delete removes a lease.
func (s *LeaseAppService) Delete(ctx context.Context, id string) error {
	if err := s.leases.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	s.log.Info(ctx, "lease deleted", logger.String("lease_id", id))
	return nil
}

// respond scores the lease against the current portfolio average.
func (s *LeaseAppService) respond(ctx context.Context, lease *models.Lease) (*dto.LeaseResponse, error) {
	all, err := s.leases.List(ctx, repository.LeaseFilter{})
	if err != nil {
		return nil, err
	}
	risk := s.portfolio.ScoreLease(lease, averageSquareFeet(all), s.now())
	return &dto.LeaseResponse{Lease: *lease, Risk: risk}, nil
}

func (s *LeaseAppService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, dashboardCacheKey); err != nil {
		s.log.Warn(ctx, "dashboard cache invalidation failed", logger.Error(err))
	}
}

func averageSquareFeet(leases []models.Lease) float64 {
	if len(leases) == 0 {
		return 0
	}
	var total float64
	for i := range leases {
		total += leases[i].SquareFeet
	}
	return total / float64(len(leases))
}

// parseDate accepts an RFC 3339 date or timestamp; empty input yields nil.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, errors.NewPlain("unparseable date")
}
