package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

type mockVendorDirectory struct {
	mock.Mock
}

func (m *mockVendorDirectory) PreferredVendor(ctx context.Context, trade string) (*models.Vendor, error) {
	args := m.Called(ctx, trade)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

var decisionNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestEngine(directory VendorDirectory, cfg MaintenanceConfig) *MaintenanceService {
	return NewMaintenanceService(directory, cfg, logger.NewNoopLogger())
}

func TestDecideEmergencyKeywordsOverrideCategory(t *testing.T) {
	directory := new(mockVendorDirectory)
	directory.On("PreferredVendor", mock.Anything, "hvac").
		Return(&models.Vendor{ID: "v1", Name: "Arctic Air", Trade: "hvac"}, nil)

	engine := newTestEngine(directory, MaintenanceConfig{})

	decision := engine.Decide(context.Background(), &models.MaintenanceExtraction{
		Category:    "hvac",
		Summary:     "HVAC failure, no heat on floor 3",
		Description: "tenants report the unit is completely down",
	}, nil, decisionNow)

	assert.Equal(t, constants.PriorityEmergency, decision.Priority)
	assert.Equal(t, 4, decision.SLAHours)
	assert.Equal(t, decisionNow.Add(4*time.Hour), decision.DueAt.UTC())
	assert.True(t, decision.RequiresOwnerApproval, "emergencies always require owner sign-off")
	require.NotNil(t, decision.Vendor)
	assert.Equal(t, "v1", decision.Vendor.ID)

	var types []constants.FollowUpType
	for _, f := range decision.FollowUps {
		types = append(types, f.Type)
	}
	assert.Contains(t, types, constants.FollowUpEscalation)
	assert.Contains(t, types, constants.FollowUpReminder)
	assert.Contains(t, types, constants.FollowUpOwnerApproval)
}

func TestDecideUrgentKeywordRaisesPriorityOneStep(t *testing.T) {
	directory := new(mockVendorDirectory)
	directory.On("PreferredVendor", mock.Anything, "janitorial").
		Return(&models.Vendor{ID: "v2", Trade: "janitorial"}, nil)

	engine := newTestEngine(directory, MaintenanceConfig{})

	decision := engine.Decide(context.Background(), &models.MaintenanceExtraction{
		Category: "janitorial",
		Summary:  "trash chute not working",
	}, nil, decisionNow)

	assert.Equal(t, constants.PriorityMedium, decision.Priority)
	assert.Equal(t, 72, decision.SLAHours)
}

func TestDecideUnknownCategoryDefaultsToGeneral(t *testing.T) {
	directory := new(mockVendorDirectory)
	directory.On("PreferredVendor", mock.Anything, "general").Return(nil, nil)

	engine := newTestEngine(directory, MaintenanceConfig{})

	decision := engine.Decide(context.Background(), &models.MaintenanceExtraction{
		Category: "teleportation",
		Summary:  "pad misaligned",
	}, nil, decisionNow)

	assert.Equal(t, constants.PriorityMedium, decision.Priority)
	assert.Equal(t, 72, decision.SLAHours)
	assert.Nil(t, decision.Vendor)
	assert.False(t, decision.RequiresOwnerApproval)
}

func TestDecideSLATable(t *testing.T) {
	cases := []struct {
		category string
		summary  string
		sla      int
	}{
		{"landscaping", "hedge trimming overdue", 168},
		{"general", "door handle loose", 72},
		{"plumbing", "slow drain in suite 200", 24},
		{"plumbing", "burst pipe in lobby", 4},
	}

	for _, tc := range cases {
		directory := new(mockVendorDirectory)
		directory.On("PreferredVendor", mock.Anything, mock.Anything).Return(nil, nil)
		engine := newTestEngine(directory, MaintenanceConfig{})

		decision := engine.Decide(context.Background(), &models.MaintenanceExtraction{
			Category: tc.category,
			Summary:  tc.summary,
		}, nil, decisionNow)

		assert.Equal(t, tc.sla, decision.SLAHours, "category=%s summary=%q", tc.category, tc.summary)
		assert.Equal(t, decisionNow.Add(time.Duration(tc.sla)*time.Hour), decision.DueAt.UTC())
	}
}

func TestDecideDueDateUsesPropertyTimeZone(t *testing.T) {
	directory := new(mockVendorDirectory)
	directory.On("PreferredVendor", mock.Anything, mock.Anything).Return(nil, nil)
	engine := newTestEngine(directory, MaintenanceConfig{})

	property := &models.Property{ID: "p1", Name: "Harbor Tower", TimeZone: "America/New_York"}

	decision := engine.Decide(context.Background(), &models.MaintenanceExtraction{
		Category: "electrical",
		Summary:  "hallway lights flickering",
	}, property, decisionNow)

	assert.Equal(t, "America/New_York", decision.DueAt.Location().String())
	assert.True(t, decision.DueAt.Equal(decisionNow.Add(24*time.Hour)), "instant must not shift with the zone")
}

func TestDecideBadTimeZoneFallsBackToUTC(t *testing.T) {
	directory := new(mockVendorDirectory)
	directory.On("PreferredVendor", mock.Anything, mock.Anything).Return(nil, nil)
	engine := newTestEngine(directory, MaintenanceConfig{})

	property := &models.Property{ID: "p1", TimeZone: "Not/AZone"}

	decision := engine.Decide(context.Background(), &models.MaintenanceExtraction{
		Category: "general",
		Summary:  "scuffed wall",
	}, property, decisionNow)

	assert.Equal(t, time.UTC, decision.DueAt.Location())
}

func TestDecideCostAboveThresholdRequiresApproval(t *testing.T) {
	directory := new(mockVendorDirectory)
	directory.On("PreferredVendor", mock.Anything, mock.Anything).Return(nil, nil)
	engine := newTestEngine(directory, MaintenanceConfig{ApprovalCostThreshold: 1000})

	reported := 2500.0
	decision := engine.Decide(context.Background(), &models.MaintenanceExtraction{
		Category:      "general",
		Summary:       "replace lobby carpet",
		EstimatedCost: &reported,
	}, nil, decisionNow)

	assert.Equal(t, 2500.0, decision.EstimatedCost)
	assert.Equal(t, 2500.0, decision.MaxCost)
	assert.True(t, decision.RequiresOwnerApproval)

	var hasApproval bool
	for _, f := range decision.FollowUps {
		if f.Type == constants.FollowUpOwnerApproval {
			hasApproval = true
			assert.Equal(t, "2500.00", f.Payload["max_cost"])
		}
	}
	assert.True(t, hasApproval)
}

func TestDecideVendorLookupFailureLeavesOrderUnassigned(t *testing.T) {
	directory := new(mockVendorDirectory)
	directory.On("PreferredVendor", mock.Anything, "plumbing").
		Return(nil, errors.ErrCache.WithMessage("directory unavailable"))

	engine := newTestEngine(directory, MaintenanceConfig{})

	decision := engine.Decide(context.Background(), &models.MaintenanceExtraction{
		Category: "plumbing",
		Summary:  "dripping faucet",
	}, nil, decisionNow)

	require.NotNil(t, decision, "decision engine never hard-fails")
	assert.Nil(t, decision.Vendor)
	assert.Equal(t, constants.PriorityHigh, decision.Priority)
}

func TestDecideFollowUpAllowList(t *testing.T) {
	directory := new(mockVendorDirectory)
	directory.On("PreferredVendor", mock.Anything, mock.Anything).Return(nil, nil)

	engine := newTestEngine(directory, MaintenanceConfig{
		AllowedFollowUps: []constants.FollowUpType{constants.FollowUpEscalation},
	})

	decision := engine.Decide(context.Background(), &models.MaintenanceExtraction{
		Category: "hvac",
		Summary:  "unit rattling",
	}, nil, decisionNow)

	require.Len(t, decision.FollowUps, 1)
	assert.Equal(t, constants.FollowUpEscalation, decision.FollowUps[0].Type)
}

func TestDecideReminderAtHalfSLA(t *testing.T) {
	directory := new(mockVendorDirectory)
	directory.On("PreferredVendor", mock.Anything, mock.Anything).Return(nil, nil)
	engine := newTestEngine(directory, MaintenanceConfig{})

	decision := engine.Decide(context.Background(), &models.MaintenanceExtraction{
		Category: "electrical",
		Summary:  "outlet dead in suite 410",
	}, nil, decisionNow)

	require.NotEmpty(t, decision.FollowUps)
	assert.Equal(t, constants.FollowUpReminder, decision.FollowUps[0].Type)
	assert.Equal(t, decisionNow.Add(12*time.Hour), decision.FollowUps[0].ScheduledFor.UTC())
}

func TestUpdatePolicyTakesEffectOnNextDecision(t *testing.T) {
	directory := new(mockVendorDirectory)
	directory.On("PreferredVendor", mock.Anything, mock.Anything).Return(nil, nil)

	engine := newTestEngine(directory, MaintenanceConfig{ApprovalCostThreshold: 10000})

	cost := 5000.0
	extraction := &models.MaintenanceExtraction{
		Category:      "janitorial",
		Summary:       "quarterly deep clean quote",
		EstimatedCost: &cost,
	}

	decision := engine.Decide(context.Background(), extraction, nil, decisionNow)
	assert.False(t, decision.RequiresOwnerApproval, "cost is under the initial threshold")

	engine.UpdatePolicy(MaintenanceConfig{ApprovalCostThreshold: 1000})

	decision = engine.Decide(context.Background(), extraction, nil, decisionNow)
	assert.True(t, decision.RequiresOwnerApproval, "the lowered threshold applies to new decisions")
}
