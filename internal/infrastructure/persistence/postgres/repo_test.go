package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

// newTestDB runs the repositories against in-memory SQLite; the SQL surface
// they use is portable across both drivers.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func TestLeaseRepositoryCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaseRepository(db)
	ctx := context.Background()

	end := time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC)
	lease := &models.Lease{
		ID:         "l1",
		TenantName: "Acme Corp",
		PropertyID: "p1",
		Suite:      "200",
		SquareFeet: 1500,
		BaseRent:   4000,
		LeaseEnd:   &end,
	}
	require.NoError(t, repo.Create(ctx, lease))

	got, err := repo.GetByID(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.TenantName)
	require.NotNil(t, got.LeaseEnd)
	assert.True(t, got.LeaseEnd.Equal(end))

	got.BaseRent = 4500
	require.NoError(t, repo.Update(ctx, got))
	updated, err := repo.GetByID(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, 4500.0, updated.BaseRent)

	require.NoError(t, repo.Delete(ctx, "l1"))
	_, err = repo.GetByID(ctx, "l1")
	assert.True(t, errors.IsNotFound(err))
}

func TestLeaseRepositoryListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaseRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Lease{ID: "l1", TenantName: "Acme Corp", PropertyID: "p1"}))
	require.NoError(t, repo.Create(ctx, &models.Lease{ID: "l2", TenantName: "Globex", PropertyID: "p1"}))
	require.NoError(t, repo.Create(ctx, &models.Lease{ID: "l3", TenantName: "Initech", PropertyID: "p2"}))

	byProperty, err := repo.List(ctx, repository.LeaseFilter{PropertyID: "p1"})
	require.NoError(t, err)
	assert.Len(t, byProperty, 2)

	byTenant, err := repo.List(ctx, repository.LeaseFilter{TenantName: "acme"})
	require.NoError(t, err)
	require.Len(t, byTenant, 1)
	assert.Equal(t, "l1", byTenant[0].ID)

	count, err := repo.Count(ctx, repository.LeaseFilter{PropertyID: "p1", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "count ignores pagination")
}

func TestLeaseRepositoryPreloadsDocuments(t *testing.T) {
	db := newTestDB(t)
	leases := NewLeaseRepository(db)
	documents := NewDocumentRepository(db)
	ctx := context.Background()

	require.NoError(t, leases.Create(ctx, &models.Lease{ID: "l1", TenantName: "Acme"}))
	leaseID := "l1"
	require.NoError(t, documents.Create(ctx, &models.Document{
		ID: "d1", LeaseID: &leaseID, FileName: "lease.pdf", Class: constants.DocumentClassLease,
	}))

	got, err := leases.GetByID(ctx, "l1")
	require.NoError(t, err)
	assert.True(t, got.HasDocument())
}

func TestWorkOrderRepositoryLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkOrderRepository(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	order := &models.WorkOrder{
		ID:       "wo1",
		Category: "plumbing",
		Priority: constants.PriorityHigh,
		SLAHours: 24,
		DueAt:    now.Add(24 * time.Hour),
		Status:   constants.WorkOrderStatusNew,
		FollowUps: []models.FollowUpAction{
			{Type: constants.FollowUpReminder, ScheduledFor: now.Add(12 * time.Hour), Description: "check in"},
		},
	}
	require.NoError(t, repo.Create(ctx, order))

	got, err := repo.GetByID(ctx, "wo1")
	require.NoError(t, err)
	require.Len(t, got.FollowUps, 1, "follow-ups survive the JSON column roundtrip")
	assert.Equal(t, constants.FollowUpReminder, got.FollowUps[0].Type)

	require.NoError(t, got.Assign("v1"))
	require.NoError(t, repo.Update(ctx, got))

	reloaded, err := repo.GetByID(ctx, "wo1")
	require.NoError(t, err)
	assert.Equal(t, constants.WorkOrderStatusAssigned, reloaded.Status)
	require.NotNil(t, reloaded.VendorID)
	assert.Equal(t, "v1", *reloaded.VendorID)
}

func TestWorkOrderRepositoryListOverdue(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkOrderRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rows := []*models.WorkOrder{
		{ID: "overdue-open", Status: constants.WorkOrderStatusAssigned, DueAt: now.Add(-time.Hour)},
		{ID: "overdue-done", Status: constants.WorkOrderStatusResolved, DueAt: now.Add(-time.Hour)},
		{ID: "not-due", Status: constants.WorkOrderStatusNew, DueAt: now.Add(time.Hour)},
	}
	for _, row := range rows {
		require.NoError(t, repo.Create(ctx, row))
	}

	overdue, err := repo.ListOverdue(ctx, now)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, "overdue-open", overdue[0].ID)
}

func TestVendorRepositoryListByTrade(t *testing.T) {
	db := newTestDB(t)
	repo := NewVendorRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Vendor{ID: "v1", Name: "Rapid Rooter", Trade: "plumbing", Active: true}))
	require.NoError(t, repo.Create(ctx, &models.Vendor{ID: "v2", Name: "Old Pipes", Trade: "plumbing", Active: false}))
	require.NoError(t, repo.Create(ctx, &models.Vendor{ID: "v3", Name: "Arctic Air", Trade: "hvac", Active: true}))

	plumbers, err := repo.ListByTrade(ctx, "Plumbing")
	require.NoError(t, err)
	require.Len(t, plumbers, 1)
	assert.Equal(t, "v1", plumbers[0].ID)
}

func TestPropertyRepositoryNameLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Property{
		ID: "p1", Name: "Harbor Tower", TimeZone: "America/New_York",
		Spaces: []models.Space{{ID: "sp1", Name: "Suite 200", Floor: "2"}},
	}))
	require.NoError(t, db.Create(&models.Occupier{ID: "o1", Name: "Acme Corp", PropertyID: "p1"}).Error)

	property, err := repo.FindByName(ctx, "harbor tower")
	require.NoError(t, err)
	assert.Equal(t, "p1", property.ID)

	space, err := repo.FindSpace(ctx, "p1", "suite 200")
	require.NoError(t, err)
	assert.Equal(t, "sp1", space.ID)

	occupier, err := repo.FindOccupier(ctx, "ACME CORP")
	require.NoError(t, err)
	assert.Equal(t, "o1", occupier.ID)

	_, err = repo.FindByName(ctx, "nowhere plaza")
	assert.True(t, errors.IsNotFound(err))
}

func TestDocumentRepositoryChunks(t *testing.T) {
	db := newTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	leaseID := "l1"
	require.NoError(t, repo.Create(ctx, &models.Document{ID: "d1", LeaseID: &leaseID, FileName: "lease.pdf"}))
	require.NoError(t, repo.CreateChunks(ctx, []models.DocumentChunk{
		{ID: "c1", DocumentID: "d1", LeaseID: &leaseID, Seq: 0, Content: "first part"},
		{ID: "c2", DocumentID: "d1", LeaseID: &leaseID, Seq: 1, Content: "second part"},
	}))

	chunks, err := repo.ListChunks(ctx, "l1")
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, 0, chunks[0].Seq)

	all, err := repo.ListChunks(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := repo.ListChunks(ctx, "other-lease")
	require.NoError(t, err)
	assert.Empty(t, none)
}
