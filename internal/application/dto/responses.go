package dto

import (
	"time"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
)

// DashboardResponse is the portfolio dashboard payload: the derived summary
// plus live work order counts.
type DashboardResponse struct {
	Summary    *models.PortfolioSummary `json:"summary"`
	WorkOrders WorkOrderCounts          `json:"work_orders"`

	// GeneratedAt is when the summary was computed; cached responses carry
	// the original computation time.
	GeneratedAt time.Time `json:"generated_at"`
	FromCache   bool      `json:"from_cache"`
}

// WorkOrderCounts tallies open work orders by urgency.
type WorkOrderCounts struct {
	Open    int `json:"open"`
	Overdue int `json:"overdue"`
}

// LeaseResponse wraps a lease with its current risk assessment.
type LeaseResponse struct {
	Lease models.Lease           `json:"lease"`
	Risk  *models.RiskAssessment `json:"risk,omitempty"`
}

// LeaseListResponse is a paged lease listing.
type LeaseListResponse struct {
	Leases []LeaseResponse `json:"leases"`
	Total  int64           `json:"total"`
}

// WorkOrderResponse is the API shape of a work order.
type WorkOrderResponse struct {
	WorkOrder *models.WorkOrder `json:"work_order"`
}

// WorkOrderListResponse is a work order listing.
type WorkOrderListResponse struct {
	WorkOrders []models.WorkOrder `json:"work_orders"`
}

// DocumentResponse reports the outcome of one document ingestion.
type DocumentResponse struct {
	Document   *models.Document `json:"document"`
	ChunkCount int              `json:"chunk_count"`
}

// Citation points at a chunk that grounded an answer.
type Citation struct {
	DocumentID string `json:"document_id"`
	ChunkSeq   int    `json:"chunk_seq"`
	Excerpt    string `json:"excerpt"`
}

// AnswerResponse is the Q&A result with its grounding citations.
type AnswerResponse struct {
	Answer    string     `json:"answer"`
	Citations []Citation `json:"citations"`
}
