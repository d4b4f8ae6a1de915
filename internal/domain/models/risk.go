package models

import (
	"time"

	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
)

// RiskAssessment is the derived risk classification for a single lease.
// It is computed on each request and never persisted.
type RiskAssessment struct {
	Score float64             `json:"score"`
	Level constants.RiskLevel `json:"level"`
}

// LeaseRisk pairs a lease with its assessment. Risk is nil for leases with no
// end date, for which risk computation does not apply.
type LeaseRisk struct {
	Lease Lease           `json:"lease"`
	Risk  *RiskAssessment `json:"risk,omitempty"`
}

// AlertInput is the contract handed to the alert builder collaborator: one
// row per assessed lease, already annotated with the computed risk.
type AlertInput struct {
	LeaseID     string              `json:"lease_id"`
	Tenant      string              `json:"tenant"`
	Property    string              `json:"property"`
	LeaseEnd    *time.Time          `json:"lease_end,omitempty"`
	HasDocument bool                `json:"has_document"`
	RiskScore   float64             `json:"risk_score"`
	RiskLevel   constants.RiskLevel `json:"risk_level"`
}

// Alert is a human-readable alert descriptor for the dashboard.
type Alert struct {
	LeaseID  string              `json:"lease_id"`
	Severity constants.RiskLevel `json:"severity"`
	Kind     string              `json:"kind"`
	Message  string              `json:"message"`
}
