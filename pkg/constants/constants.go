// Package constants defines system-wide constants for the CRE assistant service.
// This package provides type-safe constant definitions used across all modules.
package constants

import "time"

// ================================================================================
// Risk Level Constants
// ================================================================================

// RiskLevel represents the derived risk classification of a lease.
type RiskLevel string

const (
	// RiskLevelHigh indicates a lease requiring immediate attention
	RiskLevelHigh RiskLevel = "HIGH"

	// RiskLevelMedium indicates a lease that should be reviewed soon
	RiskLevelMedium RiskLevel = "MEDIUM"

	// RiskLevelLow indicates a lease in good standing
	RiskLevelLow RiskLevel = "LOW"
)

// Risk score thresholds. Scores are in [0, 100]; a score at or above
// RiskScoreHighThreshold maps to HIGH, at or above RiskScoreMediumThreshold
// maps to MEDIUM, everything else to LOW.
const (
	RiskScoreHighThreshold   = 70.0
	RiskScoreMediumThreshold = 40.0
)

// Risk score components. The expiry component decreases monotonically with
// days-to-expiration; a missing document and above-average square footage
// each add a fixed weight.
const (
	RiskPointsExpired       = 100.0
	RiskPointsExpiry90Days  = 60.0
	RiskPointsExpiry180Days = 40.0
	RiskPointsExpiry365Days = 25.0
	RiskPointsExpiry730Days = 10.0
	RiskPointsNoDocument    = 25.0
	RiskPointsAboveAvgSize  = 15.0
	RiskScoreMax            = 100.0
)

// ================================================================================
// Portfolio Aggregation Constants
// ================================================================================

const (
	// DaysPerMonth is the fixed average used when converting remaining lease
	// days to months, avoiding calendar-month edge cases.
	DaysPerMonth = 30.44

	// ExpiringSoonHorizonDays bounds the "expiring soon" bucket.
	ExpiringSoonHorizonDays = 90

	// ExposureHorizonDays bounds the 12-month exposure window and the
	// "expiring within a year" bucket.
	ExposureHorizonDays = 365
)

// ================================================================================
// Work Order Priority Constants
// ================================================================================

// Priority represents the urgency classification of a maintenance issue.
type Priority string

const (
	PriorityLow       Priority = "LOW"
	PriorityMedium    Priority = "MEDIUM"
	PriorityHigh      Priority = "HIGH"
	PriorityEmergency Priority = "EMERGENCY"
)

// PriorityRank orders priorities for comparisons; higher is more urgent.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityEmergency:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 0
	default:
		return 1 // unknown priorities rank as MEDIUM
	}
}

// SLAHours maps a priority to the agreed response window in hours.
func SLAHours(p Priority) int {
	switch p {
	case PriorityEmergency:
		return 4
	case PriorityHigh:
		return 24
	case PriorityLow:
		return 168
	default:
		return 72
	}
}

// ================================================================================
// Work Order Status Constants
// ================================================================================

// WorkOrderStatus represents the lifecycle state of a work order.
type WorkOrderStatus string

const (
	// WorkOrderStatusNew indicates a freshly created, possibly unassigned work order
	WorkOrderStatusNew WorkOrderStatus = "NEW"

	// WorkOrderStatusAssigned indicates a vendor has been set
	WorkOrderStatusAssigned WorkOrderStatus = "ASSIGNED"

	// WorkOrderStatusInProgress indicates the vendor confirmed the job
	WorkOrderStatusInProgress WorkOrderStatus = "IN_PROGRESS"

	// WorkOrderStatusResolved indicates the issue was fixed
	WorkOrderStatusResolved WorkOrderStatus = "RESOLVED"

	// WorkOrderStatusEscalated indicates the SLA elapsed without resolution
	WorkOrderStatusEscalated WorkOrderStatus = "ESCALATED"
)

// ================================================================================
// Follow-Up Action Constants
// ================================================================================

// FollowUpType identifies a scheduled follow-up action on a work order.
type FollowUpType string

const (
	// FollowUpReminder fires partway through the SLA window
	FollowUpReminder FollowUpType = "reminder"

	// FollowUpEscalation fires at the due time if the order is unresolved
	FollowUpEscalation FollowUpType = "escalation"

	// FollowUpOwnerApproval requests owner sign-off on estimated cost
	FollowUpOwnerApproval FollowUpType = "owner_approval"
)

// ================================================================================
// Document Classification Constants
// ================================================================================

// DocumentClass is the coarse type assigned to an ingested document.
type DocumentClass string

const (
	DocumentClassLease     DocumentClass = "lease"
	DocumentClassInvoice   DocumentClass = "invoice"
	DocumentClassWorkOrder DocumentClass = "work_order"
	DocumentClassOther     DocumentClass = "other"
)

// ================================================================================
// Cache TTL Constants
// ================================================================================

const (
	// DashboardSummaryCacheTTL is the default cache lifetime for the portfolio summary
	DashboardSummaryCacheTTL = 60 * time.Second

	// VendorDirectoryCacheTTL is the in-memory cache lifetime for vendor lookups
	VendorDirectoryCacheTTL = 5 * time.Minute

	// RateLimitWindow is the fixed window for per-client rate limiting
	RateLimitWindow = 1 * time.Minute
)

// ================================================================================
// Context Keys
// ================================================================================

// ContextKey is a typed key for request-scoped context values.
type ContextKey string

const (
	// ContextKeyRequestID carries the per-request correlation ID
	ContextKeyRequestID ContextKey = "request_id"

	// ContextKeyUserID carries the authenticated user ID
	ContextKeyUserID ContextKey = "user_id"

	// ContextKeyTraceID carries the OpenTelemetry trace ID of the request
	ContextKeyTraceID ContextKey = "trace_id"
)

// DefaultTimeZone is used when a property has no configured IANA zone.
const DefaultTimeZone = "UTC"
