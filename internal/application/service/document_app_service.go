package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/application/dto"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

// DocumentAppService ingests documents: classification and field extraction
// through the language model, then chunking for retrieval.
type DocumentAppService struct {
	extractor DocumentExtractor
	chunker   Chunker
	documents repository.DocumentRepository
	cache     Cache
	log       logger.Logger
}

// NewDocumentAppService creates the document application service.
func NewDocumentAppService(
	extractor DocumentExtractor,
	chunker Chunker,
	documents repository.DocumentRepository,
	cache Cache,
	log logger.Logger,
) *DocumentAppService {
	return &DocumentAppService{
		extractor: extractor,
		chunker:   chunker,
		documents: documents,
		cache:     cache,
		log:       log.WithComponent("document_app_service"),
	}
}

// Ingest classifies and extracts the document, persists it and its retrieval
// chunks. Extraction failure downgrades the document to the "other" class
// instead of failing the ingest; the text still becomes searchable.
func (s *DocumentAppService) Ingest(ctx context.Context, req *dto.IngestDocumentRequest) (*dto.DocumentResponse, error) {
	doc := &models.Document{
		ID:       uuid.New().String(),
		FileName: req.FileName,
		Class:    constants.DocumentClassOther,
	}
	if req.LeaseID != "" {
		doc.LeaseID = &req.LeaseID
	}
	if req.PropertyID != "" {
		doc.PropertyID = &req.PropertyID
	}

	extraction, err := s.extractor.ExtractDocument(ctx, req.FileName, req.Text)
	if err != nil {
		s.log.Warn(ctx, "document extraction failed, ingesting unclassified",
			logger.String("file_name", req.FileName), logger.Error(err))
	} else {
		doc.Class = classFor(extraction.Class)
		if payload, err := json.Marshal(extraction); err == nil {
			doc.ExtractedJSON = string(payload)
		}
	}

	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}

	pieces := s.chunker.Chunk(req.Text)
	chunks := make([]models.DocumentChunk, 0, len(pieces))
	for i, content := range pieces {
		chunks = append(chunks, models.DocumentChunk{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			LeaseID:    doc.LeaseID,
			Seq:        i,
			Content:    content,
			CreatedAt:  time.Now().UTC(),
		})
	}
	if len(chunks) > 0 {
		if err := s.documents.CreateChunks(ctx, chunks); err != nil {
			return nil, err
		}
	}

	s.invalidateDashboard(ctx)

	s.log.Info(ctx, "document ingested",
		logger.String("document_id", doc.ID),
		logger.String("class", string(doc.Class)),
		logger.Int("chunks", len(chunks)))

	return &dto.DocumentResponse{Document: doc, ChunkCount: len(chunks)}, nil
}

// Get fetches one document's metadata.
func (s *DocumentAppService) Get(ctx context.Context, id string) (*dto.DocumentResponse, error) {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.DocumentResponse{Document: doc}, nil
}

// ListByLease returns all documents attached to a lease.
func (s *DocumentAppService) ListByLease(ctx context.Context, leaseID string) ([]models.Document, error) {
	return s.documents.ListByLease(ctx, leaseID)
}

// invalidateDashboard drops the cached summary; attaching a document to a
// lease changes its risk score.
func (s *DocumentAppService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, dashboardCacheKey); err != nil {
		s.log.Warn(ctx, "dashboard cache invalidation failed", logger.Error(err))
	}
}

func classFor(raw string) constants.DocumentClass {
	switch constants.DocumentClass(raw) {
	case constants.DocumentClassLease, constants.DocumentClassInvoice, constants.DocumentClassWorkOrder:
		return constants.DocumentClass(raw)
	default:
		return constants.DocumentClassOther
	}
}
