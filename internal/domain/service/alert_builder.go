package service

import (
	"fmt"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
)

// defaultAlertBuilder is the standard alert policy: one alert per HIGH-risk
// lease, plus a documentation alert for any assessed lease missing paperwork.
type defaultAlertBuilder struct{}

// NewAlertBuilder returns the default alert builder.
func NewAlertBuilder() AlertBuilder {
	return &defaultAlertBuilder{}
}

func (b *defaultAlertBuilder) Build(inputs []models.AlertInput) []models.Alert {
	var alerts []models.Alert
	for _, in := range inputs {
		if in.RiskLevel == constants.RiskLevelHigh {
			message := fmt.Sprintf("lease for %s at %s is high risk (score %.0f)", in.Tenant, in.Property, in.RiskScore)
			if in.LeaseEnd != nil {
				message = fmt.Sprintf("%s, expires %s", message, in.LeaseEnd.Format("2006-01-02"))
			}
			alerts = append(alerts, models.Alert{
				LeaseID:  in.LeaseID,
				Severity: constants.RiskLevelHigh,
				Kind:     "high_risk",
				Message:  message,
			})
		}

		if !in.HasDocument {
			alerts = append(alerts, models.Alert{
				LeaseID:  in.LeaseID,
				Severity: constants.RiskLevelMedium,
				Kind:     "missing_document",
				Message:  fmt.Sprintf("no lease document on file for %s at %s", in.Tenant, in.Property),
			})
		}
	}
	return alerts
}
