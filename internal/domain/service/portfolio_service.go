package service

import (
	"sort"
	"time"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
)

// PortfolioService computes per-lease risk and portfolio-level aggregates.
// It performs no I/O: callers fetch the lease set and hand it in whole, and
// the summary is recomputed from scratch on every call.
type PortfolioService struct {
	alerts AlertBuilder
}

// NewPortfolioService creates a portfolio service with the given alert builder.
func NewPortfolioService(alerts AlertBuilder) *PortfolioService {
	return &PortfolioService{alerts: alerts}
}

// ScoreLease computes the risk assessment for one lease against the portfolio
// average square footage. Returns nil when the lease has no end date.
func (s *PortfolioService) ScoreLease(lease *models.Lease, avgSquareFeet float64, today time.Time) *models.RiskAssessment {
	days, ok := lease.DaysUntilExpiry(today)
	if !ok {
		return nil
	}

	score := expiryPoints(days)
	if !lease.HasDocument() {
		score += constants.RiskPointsNoDocument
	}
	if avgSquareFeet > 0 && lease.SquareFeet > avgSquareFeet {
		score += constants.RiskPointsAboveAvgSize
	}
	if score > constants.RiskScoreMax {
		score = constants.RiskScoreMax
	}

	return &models.RiskAssessment{Score: score, Level: levelFor(score)}
}

// Summarize folds the full lease set into the portfolio summary: totals, risk
// counts, WALT, 12-month exposure, expiration buckets and alerts.
func (s *PortfolioService) Summarize(leases []models.Lease, today time.Time) *models.PortfolioSummary {
	summary := &models.PortfolioSummary{LeaseCount: len(leases)}

	for i := range leases {
		summary.TotalMonthlyRent += leases[i].BaseRent
		summary.TotalSquareFeet += leases[i].SquareFeet
	}
	summary.TotalAnnualRent = summary.TotalMonthlyRent * 12

	avgSquareFeet := 0.0
	if len(leases) > 0 {
		avgSquareFeet = summary.TotalSquareFeet / float64(len(leases))
	}

	var (
		waltNumerator float64
		waltWeight    float64
		alertInputs   []models.AlertInput
	)

	for i := range leases {
		lease := leases[i]
		risk := s.ScoreLease(&lease, avgSquareFeet, today)
		assessed := models.LeaseRisk{Lease: lease, Risk: risk}

		if risk != nil {
			switch risk.Level {
			case constants.RiskLevelHigh:
				summary.RiskCounts.High++
			case constants.RiskLevelMedium:
				summary.RiskCounts.Medium++
			default:
				summary.RiskCounts.Low++
			}

			alertInputs = append(alertInputs, models.AlertInput{
				LeaseID:     lease.ID,
				Tenant:      lease.TenantName,
				Property:    propertyName(&lease),
				LeaseEnd:    lease.LeaseEnd,
				HasDocument: lease.HasDocument(),
				RiskScore:   risk.Score,
				RiskLevel:   risk.Level,
			})
		}

		if lease.SquareFeet > 0 && lease.LeaseEnd != nil {
			waltNumerator += lease.RemainingMonths(today) * lease.SquareFeet
			waltWeight += lease.SquareFeet
		}

		if lease.ExpiresWithin(today, constants.ExposureHorizonDays) {
			summary.RentAtRisk12M += lease.AnnualRent()
			summary.SqFtAtRisk12M += lease.SquareFeet
			summary.ExpiringWithinYear = append(summary.ExpiringWithinYear, assessed)

			if lease.ExpiresWithin(today, constants.ExpiringSoonHorizonDays) {
				summary.ExpiringSoon = append(summary.ExpiringSoon, assessed)
			}
		}
	}

	if waltWeight > 0 {
		summary.WALTMonths = waltNumerator / waltWeight
		summary.WALTYears = summary.WALTMonths / 12
	}
	if summary.TotalAnnualRent > 0 {
		summary.RentAtRiskShare = summary.RentAtRisk12M / summary.TotalAnnualRent
	}
	if summary.TotalSquareFeet > 0 {
		summary.SqFtAtRiskShare = summary.SqFtAtRisk12M / summary.TotalSquareFeet
	}

	sortByEndDate(summary.ExpiringSoon)
	sortByEndDate(summary.ExpiringWithinYear)

	if s.alerts != nil {
		summary.Alerts = s.alerts.Build(alertInputs)
	}

	return summary
}

// expiryPoints maps days-to-expiration onto the risk score's expiry component.
// The mapping is monotonically non-increasing in days.
func expiryPoints(days int) float64 {
	switch {
	case days < 0:
		return constants.RiskPointsExpired
	case days <= 90:
		return constants.RiskPointsExpiry90Days
	case days <= 180:
		return constants.RiskPointsExpiry180Days
	case days <= 365:
		return constants.RiskPointsExpiry365Days
	case days <= 730:
		return constants.RiskPointsExpiry730Days
	default:
		return 0
	}
}

func levelFor(score float64) constants.RiskLevel {
	switch {
	case score >= constants.RiskScoreHighThreshold:
		return constants.RiskLevelHigh
	case score >= constants.RiskScoreMediumThreshold:
		return constants.RiskLevelMedium
	default:
		return constants.RiskLevelLow
	}
}

func propertyName(lease *models.Lease) string {
	if lease.Property != nil {
		return lease.Property.Name
	}
	return lease.PropertyID
}

func sortByEndDate(rows []models.LeaseRisk) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Lease.LeaseEnd.Before(*rows[j].Lease.LeaseEnd)
	})
}
