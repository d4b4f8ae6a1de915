// Package models defines the domain models for the CRE assistant service.
// This file contains the Lease domain model with derived lease-term math.
package models

import (
	"math"
	"time"

	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
)

// Lease represents a commercial lease agreement for a suite within a property.
// LeaseEnd is optional: month-to-month agreements carry no end date, and risk
// computation only applies when one is present.
type Lease struct {
	// ID is the unique identifier for the lease.
	ID string `json:"id" gorm:"primaryKey;size:36"`

	// TenantName is the display name of the occupying tenant.
	TenantName string `json:"tenant_name" gorm:"size:255;index"`

	// PropertyID references the property the leased suite belongs to.
	PropertyID string `json:"property_id" gorm:"size:36;index"`

	// Property is the resolved property record, when preloaded.
	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`

	// Suite identifies the leased unit within the property.
	Suite string `json:"suite" gorm:"size:64"`

	// SquareFeet is the rentable area. Zero means unknown; such leases are
	// excluded from area-weighted aggregates.
	SquareFeet float64 `json:"square_feet"`

	// BaseRent is the monthly base rent. Zero means unknown; such leases
	// contribute nothing to rent totals.
	BaseRent float64 `json:"base_rent"`

	// LeaseStart is the commencement date, when known.
	LeaseStart *time.Time `json:"lease_start,omitempty"`

	// LeaseEnd is the expiration date. Nil for open-ended agreements.
	LeaseEnd *time.Time `json:"lease_end,omitempty" gorm:"index"`

	// Documents holds the supporting documents attached to this lease.
	Documents []Document `json:"documents,omitempty" gorm:"foreignKey:LeaseID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasDocument reports whether at least one supporting document is on file.
func (l *Lease) HasDocument() bool {
	return len(l.Documents) > 0
}

// AnnualRent returns the annualized base rent.
func (l *Lease) AnnualRent() float64 {
	return l.BaseRent * 12
}

// DaysUntilExpiry returns whole days between today and the lease end, and
// whether an end date is set at all. Negative values mean the lease has
// already expired.
func (l *Lease) DaysUntilExpiry(today time.Time) (int, bool) {
	if l.LeaseEnd == nil {
		return 0, false
	}
	return int(math.Floor(l.LeaseEnd.Sub(today).Hours() / 24)), true
}

// RemainingMonths returns the remaining lease term in months using the fixed
// average month length, clamped at zero for expired leases.
func (l *Lease) RemainingMonths(today time.Time) float64 {
	days, ok := l.DaysUntilExpiry(today)
	if !ok || days < 0 {
		return 0
	}
	return float64(days) / constants.DaysPerMonth
}

// ExpiresWithin reports whether the lease has an end date falling inside the
// window [today, today+days]. Already-expired leases are excluded; they are
// surfaced through risk scoring and alerts instead.
func (l *Lease) ExpiresWithin(today time.Time, days int) bool {
	d, ok := l.DaysUntilExpiry(today)
	return ok && d >= 0 && d <= days
}
