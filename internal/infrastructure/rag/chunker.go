// Package rag implements the retrieval pipeline for document Q&A: chunking,
// keyword retrieval and grounded answer composition.
package rag

import "strings"

const (
	defaultChunkSize    = 800
	defaultChunkOverlap = 120
)

// TextChunker splits text into overlapping chunks on paragraph boundaries
// where possible, falling back to a hard split for oversized paragraphs.
type TextChunker struct {
	size    int
	overlap int
}

// NewTextChunker creates a chunker. Non-positive arguments use the defaults.
func NewTextChunker(size, overlap int) *TextChunker {
	if size <= 0 {
		size = defaultChunkSize
	}
	if overlap <= 0 || overlap >= size {
		overlap = defaultChunkOverlap
	}
	return &TextChunker{size: size, overlap: overlap}
}

// Chunk splits the text. Empty and whitespace-only input yields no chunks.
func (c *TextChunker) Chunk(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var chunks []string
	var current strings.Builder

	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		if current.Len() > 0 && current.Len()+len(paragraph) > c.size {
			chunks = append(chunks, current.String())
			current.Reset()
		}

		if len(paragraph) > c.size {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			chunks = append(chunks, c.hardSplit(paragraph)...)
			continue
		}

		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(paragraph)
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

// hardSplit cuts an oversized paragraph into fixed windows with overlap.
func (c *TextChunker) hardSplit(paragraph string) []string {
	runes := []rune(paragraph)
	step := c.size - c.overlap

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + c.size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}
