package models

// RiskLevelCounts tallies assessed leases per risk level.
type RiskLevelCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// PortfolioSummary is the derived aggregate over all leases fetched for a
// request. Nothing here is cached incrementally; the whole structure is
// recomputed from current lease state each time.
type PortfolioSummary struct {
	LeaseCount       int     `json:"lease_count"`
	TotalMonthlyRent float64 `json:"total_monthly_rent"`
	TotalAnnualRent  float64 `json:"total_annual_rent"`
	TotalSquareFeet  float64 `json:"total_square_feet"`

	RiskCounts RiskLevelCounts `json:"risk_counts"`

	// WALTMonths is the area-weighted average remaining lease term.
	WALTMonths float64 `json:"walt_months"`
	WALTYears  float64 `json:"walt_years"`

	// Twelve-month exposure: annualized rent and area attributable to leases
	// expiring inside the horizon, absolute and as a share of the portfolio.
	RentAtRisk12M    float64 `json:"rent_at_risk_12m"`
	SqFtAtRisk12M    float64 `json:"sqft_at_risk_12m"`
	RentAtRiskShare  float64 `json:"rent_at_risk_share"`
	SqFtAtRiskShare  float64 `json:"sqft_at_risk_share"`

	// Expiration buckets, each sorted ascending by end date.
	ExpiringSoon       []LeaseRisk `json:"expiring_soon"`
	ExpiringWithinYear []LeaseRisk `json:"expiring_within_year"`

	Alerts []Alert `json:"alerts"`
}
