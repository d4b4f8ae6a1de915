package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

type documentRepo struct {
	db *gorm.DB
}

// NewDocumentRepository creates the GORM-backed document repository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *models.Document) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return errors.ErrDatabase.WithMessage("failed to create document").WithError(err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrDocumentNotFound(id)
		}
		return nil, errors.ErrDatabase.WithError(err)
	}
	return &doc, nil
}

func (r *documentRepo) ListByLease(ctx context.Context, leaseID string) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).
		Where("lease_id = ?", leaseID).
		Order("created_at").
		Find(&docs).Error
	if err != nil {
		return nil, errors.ErrDatabase.WithMessage("failed to list documents").WithError(err)
	}
	return docs, nil
}

func (r *documentRepo) Update(ctx context.Context, doc *models.Document) error {
	result := r.db.WithContext(ctx).Model(&models.Document{}).
		Where("id = ?", doc.ID).
		Select("lease_id", "property_id", "class", "extracted_json").
		Updates(doc)
	if result.Error != nil {
		return errors.ErrDatabase.WithMessage("failed to update document").WithError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrDocumentNotFound(doc.ID)
	}
	return nil
}

func (r *documentRepo) CreateChunks(ctx context.Context, chunks []models.DocumentChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(chunks, 100).Error; err != nil {
		return errors.ErrDatabase.WithMessage("failed to create document chunks").WithError(err)
	}
	return nil
}

func (r *documentRepo) ListChunks(ctx context.Context, leaseID string) ([]models.DocumentChunk, error) {
	tx := r.db.WithContext(ctx)
	if leaseID != "" {
		tx = tx.Where("lease_id = ?", leaseID)
	}
	var chunks []models.DocumentChunk
	if err := tx.Order("document_id, seq").Find(&chunks).Error; err != nil {
		return nil, errors.ErrDatabase.WithMessage("failed to list document chunks").WithError(err)
	}
	return chunks, nil
}
