package models

import "time"

// MaintenanceExtraction is the structured form of a free-text maintenance
// report. Name fields are as written by the reporter; the application layer
// resolves them against the directory before deciding.
type MaintenanceExtraction struct {
	Category      string   `json:"category"`
	Summary       string   `json:"summary"`
	Description   string   `json:"description"`
	PropertyName  string   `json:"property_name,omitempty"`
	SpaceName     string   `json:"space_name,omitempty"`
	OccupierName  string   `json:"occupier_name,omitempty"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
}

// DocumentExtraction is the structured payload pulled from an ingested
// document. Only the fields relevant to the detected class are populated;
// anything else the model surfaces lands in Fields.
type DocumentExtraction struct {
	Class        string     `json:"class"`
	TenantName   string     `json:"tenant_name,omitempty"`
	PropertyName string     `json:"property_name,omitempty"`
	Suite        string     `json:"suite,omitempty"`
	SquareFeet   *float64   `json:"square_feet,omitempty"`
	BaseRent     *float64   `json:"base_rent,omitempty"`
	LeaseStart   *time.Time `json:"lease_start,omitempty"`
	LeaseEnd     *time.Time `json:"lease_end,omitempty"`

	Fields map[string]string `json:"fields,omitempty"`
}
