package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	domainservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/service"
)

const answerPrompt = `You are an assistant for a commercial property manager.
Answer the question using ONLY the numbered context passages below. If the
passages do not contain the answer, say so plainly. Be concise.

%s
Question: %s

Answer:`

// Composer builds a grounded prompt from retrieved chunks and asks the model.
type Composer struct {
	llm domainservice.LLMClient
}

// NewComposer creates the answer composer.
func NewComposer(llm domainservice.LLMClient) *Composer {
	return &Composer{llm: llm}
}

// Answer produces a grounded answer for the question.
func (c *Composer) Answer(ctx context.Context, question string, chunks []models.DocumentChunk) (string, error) {
	var contextBlock strings.Builder
	for i, chunk := range chunks {
		fmt.Fprintf(&contextBlock, "[%d] %s\n\n", i+1, strings.TrimSpace(chunk.Content))
	}

	prompt := fmt.Sprintf(answerPrompt, contextBlock.String(), question)

	answer, err := c.llm.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
