// Package service contains the application services. They orchestrate domain
// services, repositories and infrastructure collaborators into the use cases
// exposed over HTTP.
package service

import (
	"context"
	"time"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
)

// Cache is the response cache surface used by the application layer.
// Implementations marshal values to JSON.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// MaintenanceExtractor turns a free-text maintenance report into its
// structured form.
type MaintenanceExtractor interface {
	ExtractMaintenance(ctx context.Context, text string) (*models.MaintenanceExtraction, error)
}

// DocumentExtractor classifies a document's text and pulls out its
// structured fields in one pass.
type DocumentExtractor interface {
	ExtractDocument(ctx context.Context, fileName, text string) (*models.DocumentExtraction, error)
}

// Chunker splits document text into retrieval units.
type Chunker interface {
	Chunk(text string) []string
}

// Retriever scores stored chunks against a question and returns the best
// matches in descending relevance order.
type Retriever interface {
	Retrieve(ctx context.Context, question, leaseID string, limit int) ([]models.DocumentChunk, error)
}

// AnswerComposer produces a grounded answer from a question and its
// retrieved context.
type AnswerComposer interface {
	Answer(ctx context.Context, question string, chunks []models.DocumentChunk) (string, error)
}
