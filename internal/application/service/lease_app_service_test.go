package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/application/dto"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
	domainservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/service"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

func testEndIn(days int) time.Time {
	return time.Now().AddDate(0, 0, days).Add(time.Hour)
}

func newLeaseFixture() (*LeaseAppService, *mockLeaseRepo, *mockCache) {
	repo := new(mockLeaseRepo)
	cache := new(mockCache)
	portfolio := domainservice.NewPortfolioService(domainservice.NewAlertBuilder())
	svc := NewLeaseAppService(repo, portfolio, cache, logger.NewNoopLogger())
	return svc, repo, cache
}

func TestCreateLeaseParsesDatesAndInvalidatesCache(t *testing.T) {
	svc, repo, cache := newLeaseFixture()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Lease")).Return(nil)
	repo.On("List", mock.Anything, repository.LeaseFilter{}).Return([]models.Lease{}, nil)
	cache.On("Delete", mock.Anything, dashboardCacheKey).Return(nil)

	resp, err := svc.Create(context.Background(), &dto.CreateLeaseRequest{
		TenantName: "Acme",
		PropertyID: "p1",
		Suite:      "200",
		SquareFeet: 1500,
		BaseRent:   4000,
		LeaseStart: "2025-01-01",
		LeaseEnd:   "2027-12-31",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Lease.ID)
	require.NotNil(t, resp.Lease.LeaseEnd)
	assert.Equal(t, 2027, resp.Lease.LeaseEnd.Year())
	assert.NotNil(t, resp.Risk)
	cache.AssertCalled(t, "Delete", mock.Anything, dashboardCacheKey)
}

func TestCreateLeaseRejectsBadDates(t *testing.T) {
	svc, repo, _ := newLeaseFixture()

	_, err := svc.Create(context.Background(), &dto.CreateLeaseRequest{
		TenantName: "Acme",
		PropertyID: "p1",
		LeaseEnd:   "31/12/2027",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLeaseRejectsEndBeforeStart(t *testing.T) {
	svc, repo, _ := newLeaseFixture()

	_, err := svc.Create(context.Background(), &dto.CreateLeaseRequest{
		TenantName: "Acme",
		PropertyID: "p1",
		LeaseStart: "2027-01-01",
		LeaseEnd:   "2025-01-01",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateLeaseAppliesPartialChanges(t *testing.T) {
	svc, repo, cache := newLeaseFixture()

	existing := &models.Lease{ID: "l1", TenantName: "Acme", BaseRent: 4000}
	repo.On("GetByID", mock.Anything, "l1").Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)
	repo.On("List", mock.Anything, repository.LeaseFilter{}).Return([]models.Lease{*existing}, nil)
	cache.On("Delete", mock.Anything, dashboardCacheKey).Return(nil)

	newRent := 4500.0
	resp, err := svc.Update(context.Background(), "l1", &dto.UpdateLeaseRequest{BaseRent: &newRent})

	require.NoError(t, err)
	assert.Equal(t, 4500.0, resp.Lease.BaseRent)
	assert.Equal(t, "Acme", resp.Lease.TenantName)
}

func TestGetLeaseNotFound(t *testing.T) {
	svc, repo, _ := newLeaseFixture()

	repo.On("GetByID", mock.Anything, "missing").Return(nil, errors.ErrLeaseNotFound("missing"))

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestListLeasesScoresEachRow(t *testing.T) {
	svc, repo, _ := newLeaseFixture()

	end := testEndIn(30)
	rows := []models.Lease{
		{ID: "l1", SquareFeet: 1000, LeaseEnd: &end},
		{ID: "l2", SquareFeet: 1000},
	}
	filter := repository.LeaseFilter{Limit: 10}
	repo.On("List", mock.Anything, filter).Return(rows, nil)
	repo.On("Count", mock.Anything, filter).Return(int64(2), nil)

	resp, err := svc.List(context.Background(), &dto.ListLeasesRequest{Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
	require.Len(t, resp.Leases, 2)
	assert.NotNil(t, resp.Leases[0].Risk)
	assert.Nil(t, resp.Leases[1].Risk, "open-ended leases carry no assessment")
}
