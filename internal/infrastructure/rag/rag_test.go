package rag

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
)

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

func TestChunkerSplitsOnParagraphs(t *testing.T) {
	chunker := NewTextChunker(100, 20)

	text := "First paragraph about rent.\n\nSecond paragraph about parking.\n\nThird paragraph about insurance obligations of the tenant."
	chunks := chunker.Chunk(text)

	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.NotEmpty(t, strings.TrimSpace(chunk))
	}
	assert.Contains(t, strings.Join(chunks, " "), "parking")
}

func TestChunkerHardSplitsLongParagraphs(t *testing.T) {
	chunker := NewTextChunker(50, 10)

	long := strings.Repeat("lease covenant ", 30)
	chunks := chunker.Chunk(long)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len([]rune(chunk)), 50)
	}
}

func TestChunkerEmptyInput(t *testing.T) {
	chunker := NewTextChunker(0, 0)
	assert.Nil(t, chunker.Chunk("   \n\n  "))
}

func TestRetrieverRanksByTermOverlap(t *testing.T) {
	repo := new(mockDocumentRepo)
	repo.On("ListChunks", mock.Anything, "l1").Return([]models.DocumentChunk{
		{ID: "c1", DocumentID: "d1", Seq: 0, Content: "The premises include two parking spaces in the garage."},
		{ID: "c2", DocumentID: "d1", Seq: 1, Content: "Base rent shall be five thousand dollars per month."},
		{ID: "c3", DocumentID: "d1", Seq: 2, Content: "The tenant shall maintain insurance at all times."},
	}, nil)

	retriever := NewKeywordRetriever(repo)
	chunks, err := retriever.Retrieve(context.Background(), "how many parking spaces?", "l1", 2)

	require.NoError(t, err)
	require.NotEmpty(t, chunks)
	assert.Equal(t, "c1", chunks[0].ID)
	assert.LessOrEqual(t, len(chunks), 2)
}

func TestRetrieverNoOverlapReturnsNothing(t *testing.T) {
	repo := new(mockDocumentRepo)
	repo.On("ListChunks", mock.Anything, "").Return([]models.DocumentChunk{
		{ID: "c1", Content: "Base rent shall be five thousand dollars."},
	}, nil)

	retriever := NewKeywordRetriever(repo)
	chunks, err := retriever.Retrieve(context.Background(), "helicopter maintenance schedule", "", 5)

	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestRetrieverEmptyCorpus(t *testing.T) {
	repo := new(mockDocumentRepo)
	repo.On("ListChunks", mock.Anything, "").Return([]models.DocumentChunk{}, nil)

	retriever := NewKeywordRetriever(repo)
	chunks, err := retriever.Retrieve(context.Background(), "what is the rent?", "", 5)

	require.NoError(t, err)
	assert.Empty(t, chunks)
}

type fakeLLM struct {
	response string
	prompt   string
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, nil
}

func TestComposerNumbersContextPassages(t *testing.T) {
	fake := &fakeLLM{response: "The lease includes two parking spaces."}
	composer := NewComposer(fake)

	answer, err := composer.Answer(context.Background(), "how many parking spaces?", []models.DocumentChunk{
		{Content: "The premises include two parking spaces."},
		{Content: "Base rent is five thousand dollars."},
	})

	require.NoError(t, err)
	assert.Equal(t, "The lease includes two parking spaces.", answer)
	assert.Contains(t, fake.prompt, "[1] The premises include two parking spaces.")
	assert.Contains(t, fake.prompt, "[2] Base rent is five thousand dollars.")
	assert.Contains(t, fake.prompt, "how many parking spaces?")
}
