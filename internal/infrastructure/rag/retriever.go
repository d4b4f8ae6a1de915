package rag

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
)

// stopwords are excluded from term matching; they carry no signal.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true, "was": true,
	"of": true, "in": true, "on": true, "at": true, "to": true, "for": true,
	"and": true, "or": true, "what": true, "which": true, "how": true,
	"much": true, "many": true, "does": true, "do": true, "this": true,
	"that": true, "it": true, "be": true, "by": true, "with": true,
}

// KeywordRetriever scores chunks by weighted term overlap with the question.
// Rarer terms in the corpus count more.
type KeywordRetriever struct {
	documents repository.DocumentRepository
}

// NewKeywordRetriever creates the retriever.
func NewKeywordRetriever(documents repository.DocumentRepository) *KeywordRetriever {
	return &KeywordRetriever{documents: documents}
}

type scoredChunk struct {
	chunk models.DocumentChunk
	score float64
}

// Retrieve returns up to limit chunks in descending relevance order. Chunks
// with no term overlap are never returned.
func (r *KeywordRetriever) Retrieve(ctx context.Context, question, leaseID string, limit int) ([]models.DocumentChunk, error) {
	chunks, err := r.documents.ListChunks(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	terms := tokenize(question)
	if len(terms) == 0 {
		return nil, nil
	}

	// Document frequency per term across the candidate chunks.
	df := make(map[string]int, len(terms))
	tokenized := make([]map[string]int, len(chunks))
	for i := range chunks {
		counts := termCounts(tokenize(chunks[i].Content))
		tokenized[i] = counts
		for _, term := range terms {
			if counts[term] > 0 {
				df[term]++
			}
		}
	}

	scored := make([]scoredChunk, 0, len(chunks))
	for i := range chunks {
		var score float64
		for _, term := range terms {
			occurrences := tokenized[i][term]
			if occurrences == 0 {
				continue
			}
			// Inverse-frequency weight: a term present in every chunk
			// contributes little, a rare term a lot.
			weight := float64(len(chunks)+1) / float64(df[term]+1)
			score += float64(occurrences) * weight
		}
		if score > 0 {
			scored = append(scored, scoredChunk{chunk: chunks[i], score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	result := make([]models.DocumentChunk, len(scored))
	for i, s := range scored {
		result[i] = s.chunk
	}
	return result, nil
}

func tokenize(text string) []string {
	var terms []string
	for _, raw := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len(raw) < 2 || stopwords[raw] {
			continue
		}
		terms = append(terms, raw)
	}
	return terms
}

func termCounts(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	return counts
}
