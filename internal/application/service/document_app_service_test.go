package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/application/dto"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

func newDocumentFixture(chunks []string) (*DocumentAppService, *mockDocumentExtractor, *mockDocumentRepo, *mockCache) {
	extractor := new(mockDocumentExtractor)
	repo := new(mockDocumentRepo)
	cache := new(mockCache)
	svc := NewDocumentAppService(extractor, &fixedChunker{chunks: chunks}, repo, cache, logger.NewNoopLogger())
	return svc, extractor, repo, cache
}

func TestIngestClassifiesAndChunks(t *testing.T) {
	svc, extractor, repo, cache := newDocumentFixture([]string{"part one", "part two"})

	extractor.On("ExtractDocument", mock.Anything, "lease.pdf", "full lease text").
		Return(&models.DocumentExtraction{Class: "lease", TenantName: "Acme"}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Document")).Return(nil)
	repo.On("CreateChunks", mock.Anything, mock.AnythingOfType("[]models.DocumentChunk")).
		Run(func(args mock.Arguments) {
			chunks := args.Get(1).([]models.DocumentChunk)
			require.Len(t, chunks, 2)
			assert.Equal(t, 0, chunks[0].Seq)
			assert.Equal(t, 1, chunks[1].Seq)
			require.NotNil(t, chunks[0].LeaseID)
			assert.Equal(t, "lease-1", *chunks[0].LeaseID)
		}).
		Return(nil)
	cache.On("Delete", mock.Anything, dashboardCacheKey).Return(nil)

	resp, err := svc.Ingest(context.Background(), &dto.IngestDocumentRequest{
		FileName: "lease.pdf",
		Text:     "full lease text",
		LeaseID:  "lease-1",
	})

	require.NoError(t, err)
	assert.Equal(t, constants.DocumentClassLease, resp.Document.Class)
	assert.Contains(t, resp.Document.ExtractedJSON, "Acme")
	assert.Equal(t, 2, resp.ChunkCount)
	repo.AssertExpectations(t)
}

func TestIngestExtractionFailureStillIngests(t *testing.T) {
	svc, extractor, repo, cache := newDocumentFixture([]string{"raw text"})

	extractor.On("ExtractDocument", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Document")).Return(nil)
	repo.On("CreateChunks", mock.Anything, mock.Anything).Return(nil)
	cache.On("Delete", mock.Anything, dashboardCacheKey).Return(nil)

	resp, err := svc.Ingest(context.Background(), &dto.IngestDocumentRequest{
		FileName: "scan.pdf",
		Text:     "raw text",
	})

	require.NoError(t, err, "extraction trouble must not block ingestion")
	assert.Equal(t, constants.DocumentClassOther, resp.Document.Class)
	assert.Empty(t, resp.Document.ExtractedJSON)
}

func TestIngestUnknownClassMapsToOther(t *testing.T) {
	svc, extractor, repo, cache := newDocumentFixture(nil)

	extractor.On("ExtractDocument", mock.Anything, mock.Anything, mock.Anything).
		Return(&models.DocumentExtraction{Class: "memo"}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Document")).Return(nil)
	cache.On("Delete", mock.Anything, dashboardCacheKey).Return(nil)

	resp, err := svc.Ingest(context.Background(), &dto.IngestDocumentRequest{
		FileName: "memo.txt",
		Text:     "short",
	})

	require.NoError(t, err)
	assert.Equal(t, constants.DocumentClassOther, resp.Document.Class)
	assert.Zero(t, resp.ChunkCount)
	repo.AssertNotCalled(t, "CreateChunks", mock.Anything, mock.Anything)
}
