package repository

import (
	"context"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
)

// DocumentRepository is the persistence contract for documents and their
// retrieval chunks.
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id string) (*models.Document, error)
	ListByLease(ctx context.Context, leaseID string) ([]models.Document, error)
	Update(ctx context.Context, doc *models.Document) error

	// CreateChunks persists the retrieval chunks of one document in order.
	CreateChunks(ctx context.Context, chunks []models.DocumentChunk) error

	// ListChunks returns chunks for retrieval. When leaseID is non-empty the
	// result is restricted to that lease's documents.
	ListChunks(ctx context.Context, leaseID string) ([]models.DocumentChunk, error)
}
