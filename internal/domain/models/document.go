package models

import (
	"time"

	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
)

// Document represents an ingested file's metadata and extraction results.
// The raw bytes are stored elsewhere; this record carries the classification
// and the structured fields pulled out of the text.
type Document struct {
	ID         string  `json:"id" gorm:"primaryKey;size:36"`
	LeaseID    *string `json:"lease_id,omitempty" gorm:"size:36;index"`
	PropertyID *string `json:"property_id,omitempty" gorm:"size:36;index"`
	FileName   string  `json:"file_name" gorm:"size:512"`

	// Class is the coarse document type assigned during ingestion.
	Class constants.DocumentClass `json:"class" gorm:"size:32;index"`

	// ExtractedJSON holds the structured extraction payload as produced by
	// the language model, kept verbatim for audit.
	ExtractedJSON string `json:"extracted_json,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DocumentChunk is a retrieval unit of document text. Chunks are scored
// against questions during Q&A and the best matches ground the answer.
type DocumentChunk struct {
	ID         string `json:"id" gorm:"primaryKey;size:36"`
	DocumentID string `json:"document_id" gorm:"size:36;index"`
	LeaseID    *string `json:"lease_id,omitempty" gorm:"size:36;index"`
	Seq        int    `json:"seq"`
	Content    string `json:"content" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
}
