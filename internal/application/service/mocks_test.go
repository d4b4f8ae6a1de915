package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
)

type mockLeaseRepo struct{ mock.Mock }

func (m *mockLeaseRepo) Create(ctx context.Context, lease *models.Lease) error {
	return m.Called(ctx, lease).Error(0)
}

func (m *mockLeaseRepo) GetByID(ctx context.Context, id string) (*models.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lease), args.Error(1)
}

func (m *mockLeaseRepo) List(ctx context.Context, filter repository.LeaseFilter) ([]models.Lease, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Lease), args.Error(1)
}

func (m *mockLeaseRepo) Update(ctx context.Context, lease *models.Lease) error {
	return m.Called(ctx, lease).Error(0)
}

func (m *mockLeaseRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockLeaseRepo) Count(ctx context.Context, filter repository.LeaseFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockWorkOrderRepo struct{ mock.Mock }

func (m *mockWorkOrderRepo) Create(ctx context.Context, order *models.WorkOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockWorkOrderRepo) GetByID(ctx context.Context, id string) (*models.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkOrder), args.Error(1)
}

func (m *mockWorkOrderRepo) List(ctx context.Context, filter repository.WorkOrderFilter) ([]models.WorkOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkOrder), args.Error(1)
}

func (m *mockWorkOrderRepo) Update(ctx context.Context, order *models.WorkOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockWorkOrderRepo) ListOverdue(ctx context.Context, now time.Time) ([]models.WorkOrder, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkOrder), args.Error(1)
}

type mockPropertyRepo struct{ mock.Mock }

func (m *mockPropertyRepo) Create(ctx context.Context, property *models.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *mockPropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *mockPropertyRepo) List(ctx context.Context) ([]models.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *mockPropertyRepo) FindByName(ctx context.Context, name string) (*models.Property, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *mockPropertyRepo) FindSpace(ctx context.Context, propertyID, name string) (*models.Space, error) {
	args := m.Called(ctx, propertyID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Space), args.Error(1)
}

func (m *mockPropertyRepo) FindOccupier(ctx context.Context, name string) (*models.Occupier, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Occupier), args.Error(1)
}

type mockDocumentRepo struct{ mock.Mock }

func (m *mockDocumentRepo) Create(ctx context.Context, doc *models.Document) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *mockDocumentRepo) GetByID(ctx context.Context, id string) (*models.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *mockDocumentRepo) ListByLease(ctx context.Context, leaseID string) ([]models.Document, error) {
	args := m.Called(ctx, leaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *mockDocumentRepo) Update(ctx context.Context, doc *models.Document) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *mockDocumentRepo) CreateChunks(ctx context.Context, chunks []models.DocumentChunk) error {
	return m.Called(ctx, chunks).Error(0)
}

func (m *mockDocumentRepo) ListChunks(ctx context.Context, leaseID string) ([]models.DocumentChunk, error) {
	args := m.Called(ctx, leaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DocumentChunk), args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type mockMaintenanceExtractor struct{ mock.Mock }

func (m *mockMaintenanceExtractor) ExtractMaintenance(ctx context.Context, text string) (*models.MaintenanceExtraction, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceExtraction), args.Error(1)
}

type mockDocumentExtractor struct{ mock.Mock }

func (m *mockDocumentExtractor) ExtractDocument(ctx context.Context, fileName, text string) (*models.DocumentExtraction, error) {
	args := m.Called(ctx, fileName, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DocumentExtraction), args.Error(1)
}

type mockEventPublisher struct{ mock.Mock }

func (m *mockEventPublisher) PublishCreated(ctx context.Context, order *models.WorkOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockEventPublisher) PublishStatusChanged(ctx context.Context, order *models.WorkOrder) error {
	return m.Called(ctx, order).Error(0)
}

type mockVendorDirectory struct{ mock.Mock }

func (m *mockVendorDirectory) PreferredVendor(ctx context.Context, trade string) (*models.Vendor, error) {
	args := m.Called(ctx, trade)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

type mockRetriever struct{ mock.Mock }

func (m *mockRetriever) Retrieve(ctx context.Context, question, leaseID string, limit int) ([]models.DocumentChunk, error) {
	args := m.Called(ctx, question, leaseID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DocumentChunk), args.Error(1)
}

type mockComposer struct{ mock.Mock }

func (m *mockComposer) Answer(ctx context.Context, question string, chunks []models.DocumentChunk) (string, error) {
	args := m.Called(ctx, question, chunks)
	return args.String(0), args.Error(1)
}

type fixedChunker struct{ chunks []string }

func (f *fixedChunker) Chunk(text string) []string { return f.chunks }
