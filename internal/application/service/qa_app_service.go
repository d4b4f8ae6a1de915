package service

import (
	"context"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/application/dto"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

// retrievalLimit caps how many chunks ground one answer.
const retrievalLimit = 5

// QAAppService answers questions over ingested documents: retrieve the most
// relevant chunks, compose a grounded answer, and cite the sources.
type QAAppService struct {
	retriever Retriever
	composer  AnswerComposer
	log       logger.Logger
}

// NewQAAppService creates the Q&A application service.
func NewQAAppService(retriever Retriever, composer AnswerComposer, log logger.Logger) *QAAppService {
	return &QAAppService{
		retriever: retriever,
		composer:  composer,
		log:       log.WithComponent("qa_app_service"),
	}
}

// Ask answers one question. With no matching chunks the service answers
// honestly that it has nothing to go on rather than letting the model guess.
func (s *QAAppService) Ask(ctx context.Context, req *dto.AskRequest) (*dto.AnswerResponse, error) {
	chunks, err := s.retriever.Retrieve(ctx, req.Question, req.LeaseID, retrievalLimit)
	if err != nil {
		return nil, err
	}

	if len(chunks) == 0 {
		return &dto.AnswerResponse{
			Answer: "No relevant documents were found to answer this question.",
		}, nil
	}

	answer, err := s.composer.Answer(ctx, req.Question, chunks)
	if err != nil {
		return nil, err
	}

	citations := make([]dto.Citation, 0, len(chunks))
	for _, c := range chunks {
		citations = append(citations, dto.Citation{
			DocumentID: c.DocumentID,
			ChunkSeq:   c.Seq,
			Excerpt:    excerpt(c.Content, 160),
		})
	}

	s.log.Info(ctx, "question answered",
		logger.Int("citations", len(citations)),
		logger.String("lease_id", req.LeaseID))

	return &dto.AnswerResponse{Answer: answer, Citations: citations}, nil
}

func excerpt(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
