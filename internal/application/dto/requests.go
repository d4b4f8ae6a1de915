// Package dto defines the request and response shapes of the application
// layer. Handlers bind JSON onto these types; application services consume
// and produce them.
package dto

// CreateLeaseRequest creates a lease record. Dates are RFC 3339 date strings.
type CreateLeaseRequest struct {
	TenantName string  `json:"tenant_name" binding:"required"`
	PropertyID string  `json:"property_id" binding:"required"`
	Suite      string  `json:"suite"`
	SquareFeet float64 `json:"square_feet"`
	BaseRent   float64 `json:"base_rent"`
	LeaseStart string  `json:"lease_start,omitempty"`
	LeaseEnd   string  `json:"lease_end,omitempty"`
}

// UpdateLeaseRequest applies a partial update. Nil fields are left unchanged;
// an empty date string clears the corresponding date.
type UpdateLeaseRequest struct {
	TenantName *string  `json:"tenant_name,omitempty"`
	Suite      *string  `json:"suite,omitempty"`
	SquareFeet *float64 `json:"square_feet,omitempty"`
	BaseRent   *float64 `json:"base_rent,omitempty"`
	LeaseStart *string  `json:"lease_start,omitempty"`
	LeaseEnd   *string  `json:"lease_end,omitempty"`
}

// ListLeasesRequest filters the lease listing.
type ListLeasesRequest struct {
	PropertyID string `form:"property_id"`
	TenantName string `form:"tenant_name"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

// ReportIssueRequest submits a free-text maintenance report.
type ReportIssueRequest struct {
	Text         string `json:"text" binding:"required"`
	PropertyID   string `json:"property_id,omitempty"`
	ReportedBy   string `json:"reported_by,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
}

// AssignWorkOrderRequest assigns a vendor to an open work order.
type AssignWorkOrderRequest struct {
	VendorID string `json:"vendor_id" binding:"required"`
}

// IngestDocumentRequest submits a document's extracted text for
// classification, field extraction and chunking.
type IngestDocumentRequest struct {
	FileName   string `json:"file_name" binding:"required"`
	Text       string `json:"text" binding:"required"`
	LeaseID    string `json:"lease_id,omitempty"`
	PropertyID string `json:"property_id,omitempty"`
}

// AskRequest poses a question over the ingested documents. LeaseID optionally
// narrows retrieval to one lease's documents.
type AskRequest struct {
	Question string `json:"question" binding:"required"`
	LeaseID  string `json:"lease_id,omitempty"`
}
