package service

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/application/dto"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
	domainservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/service"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

// DashboardAppService assembles the portfolio dashboard. The expensive
// summary is cached for a short TTL; lease mutations invalidate it.
type DashboardAppService struct {
	leases     repository.LeaseRepository
	workOrders repository.WorkOrderRepository
	portfolio  *domainservice.PortfolioService
	cache      Cache
	cacheTTL   atomic.Int64
	log        logger.Logger
	now        func() time.Time
}

// NewDashboardAppService creates the dashboard application service. A
// non-positive cacheTTL falls back to the default summary TTL.
func NewDashboardAppService(
	leases repository.LeaseRepository,
	workOrders repository.WorkOrderRepository,
	portfolio *domainservice.PortfolioService,
	cache Cache,
	cacheTTL time.Duration,
	log logger.Logger,
) *DashboardAppService {
	s := &DashboardAppService{
		leases:     leases,
		workOrders: workOrders,
		portfolio:  portfolio,
		cache:      cache,
		log:        log.WithComponent("dashboard_app_service"),
		now:        time.Now,
	}
	s.SetCacheTTL(cacheTTL)
	return s
}

// SetCacheTTL adjusts the summary cache lifetime. Called on config hot
// reload; already-cached entries keep the TTL they were stored with.
func (s *DashboardAppService) SetCacheTTL(ttl time.Duration) {
	if ttl <= 0 {
		ttl = constants.DashboardSummaryCacheTTL
	}
	s.cacheTTL.Store(int64(ttl))
}

// GetDashboard returns the cached dashboard when fresh, otherwise recomputes
// it. Lease data and work order counts are fetched concurrently.
func (s *DashboardAppService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.cache != nil {
		var cached dto.DashboardResponse
		hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached)
		if err != nil {
			s.log.Warn(ctx, "dashboard cache read failed", logger.Error(err))
		} else if hit {
			cached.FromCache = true
			return &cached, nil
		}
	}

	now := s.now()

	var (
		leases []models.Lease
		open   []models.WorkOrder
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leases, err = s.leases.List(gctx, repository.LeaseFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		open, err = s.workOrders.List(gctx, repository.WorkOrderFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Summary:     s.portfolio.Summarize(leases, now),
		WorkOrders:  countWorkOrders(open, now),
		GeneratedAt: now,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, dashboardCacheKey, resp, time.Duration(s.cacheTTL.Load())); err != nil {
			s.log.Warn(ctx, "dashboard cache write failed", logger.Error(err))
		}
	}
	return resp, nil
}

func countWorkOrders(orders []models.WorkOrder, now time.Time) dto.WorkOrderCounts {
	var counts dto.WorkOrderCounts
	for i := range orders {
		if orders[i].IsTerminal() {
			continue
		}
		counts.Open++
		if orders[i].Overdue(now) {
			counts.Overdue++
		}
	}
	return counts
}
