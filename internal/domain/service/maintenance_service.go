package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

// categoryProfile is the static rule row for one maintenance category.
type categoryProfile struct {
	trade        string
	basePriority constants.Priority
	impact       string
	typicalCost  float64
	maxCost      float64
}

// categoryProfiles keys are normalized category names. Unknown categories
// fall back to the general profile at MEDIUM priority.
var categoryProfiles = map[string]categoryProfile{
	"hvac": {
		trade:        "hvac",
		basePriority: constants.PriorityHigh,
		impact:       "climate control degraded, occupant comfort affected",
		typicalCost:  450,
		maxCost:      1500,
	},
	"plumbing": {
		trade:        "plumbing",
		basePriority: constants.PriorityHigh,
		impact:       "water service affected, risk of property damage",
		typicalCost:  300,
		maxCost:      1200,
	},
	"electrical": {
		trade:        "electrical",
		basePriority: constants.PriorityHigh,
		impact:       "power or lighting affected, potential safety hazard",
		typicalCost:  350,
		maxCost:      1200,
	},
	"elevator": {
		trade:        "elevator",
		basePriority: constants.PriorityHigh,
		impact:       "vertical transport out of service, accessibility impacted",
		typicalCost:  800,
		maxCost:      3000,
	},
	"roofing": {
		trade:        "roofing",
		basePriority: constants.PriorityMedium,
		impact:       "building envelope compromised",
		typicalCost:  600,
		maxCost:      2500,
	},
	"janitorial": {
		trade:        "janitorial",
		basePriority: constants.PriorityLow,
		impact:       "cleanliness below standard",
		typicalCost:  100,
		maxCost:      400,
	},
	"landscaping": {
		trade:        "landscaping",
		basePriority: constants.PriorityLow,
		impact:       "exterior appearance below standard",
		typicalCost:  150,
		maxCost:      500,
	},
	"general": {
		trade:        "general",
		basePriority: constants.PriorityMedium,
		impact:       "general repair required",
		typicalCost:  200,
		maxCost:      800,
	},
}

// emergencyKeywords escalate any request to EMERGENCY regardless of category.
var emergencyKeywords = []string{
	"no heat", "no cooling", "no power", "no water",
	"flood", "flooding", "burst", "gas leak", "gas smell",
	"fire", "smoke", "sparking", "sewage", "carbon monoxide",
	"people trapped", "stuck in elevator",
}

// urgentKeywords raise the priority one step when present.
var urgentKeywords = []string{
	"leak", "leaking", "outage", "broken lock", "security",
	"not working", "failure", "overflowing",
}

// MaintenanceConfig carries the tunable policy knobs of the decision engine.
type MaintenanceConfig struct {
	// ApprovalCostThreshold is the max cost above which owner approval is
	// required regardless of priority.
	ApprovalCostThreshold float64

	// AllowedFollowUps restricts which follow-up types the engine emits.
	// Empty means all types are allowed.
	AllowedFollowUps []constants.FollowUpType

	// DefaultTimeZone is used when a property carries no IANA zone.
	DefaultTimeZone string
}

// MaintenanceService is the rule-based decision engine. Given an extracted
// maintenance request it derives priority, SLA, due date, vendor assignment,
// cost expectations and follow-up actions. It never calls the language model
// and never fails a request outright: a vendor lookup error simply yields an
// unassigned order.
type MaintenanceService struct {
	directory VendorDirectory
	log       logger.Logger

	mu  sync.RWMutex
	cfg MaintenanceConfig
}

// NewMaintenanceService creates the decision engine.
func NewMaintenanceService(directory VendorDirectory, cfg MaintenanceConfig, log logger.Logger) *MaintenanceService {
	s := &MaintenanceService{directory: directory, log: log}
	s.UpdatePolicy(cfg)
	return s
}

// UpdatePolicy replaces the tunable policy knobs. Called on config hot
// reload; in-flight decisions keep the snapshot they started with.
func (s *MaintenanceService) UpdatePolicy(cfg MaintenanceConfig) {
	if cfg.ApprovalCostThreshold <= 0 {
		cfg.ApprovalCostThreshold = 1000
	}
	if cfg.DefaultTimeZone == "" {
		cfg.DefaultTimeZone = constants.DefaultTimeZone
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

// policy returns a snapshot of the current knobs.
func (s *MaintenanceService) policy() MaintenanceConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Decide produces the full decision bundle for one extracted request.
// property may be nil when the reporter's property could not be resolved.
func (s *MaintenanceService) Decide(ctx context.Context, extraction *models.MaintenanceExtraction, property *models.Property, now time.Time) *models.WorkOrderDecision {
	policy := s.policy()
	profile := s.profileFor(extraction.Category)
	priority := s.classifyPriority(profile.basePriority, extraction)

	slaHours := constants.SLAHours(priority)
	dueAt := s.dueAt(policy, now, slaHours, property)

	estimated, maxCost := profile.typicalCost, profile.maxCost
	if extraction.EstimatedCost != nil && *extraction.EstimatedCost > 0 {
		estimated = *extraction.EstimatedCost
		if estimated > maxCost {
			maxCost = estimated
		}
	}

	requiresApproval := maxCost > policy.ApprovalCostThreshold || priority == constants.PriorityEmergency

	decision := &models.WorkOrderDecision{
		Priority:              priority,
		BusinessImpact:        profile.impact,
		RequiresOwnerApproval: requiresApproval,
		EstimatedCost:         estimated,
		MaxCost:               maxCost,
		SLAHours:              slaHours,
		DueAt:                 dueAt,
	}

	vendor, err := s.directory.PreferredVendor(ctx, profile.trade)
	if err != nil {
		s.log.Warn(ctx, "vendor lookup failed, leaving order unassigned",
			logger.String("trade", profile.trade), logger.Error(err))
	} else {
		decision.Vendor = vendor
	}

	decision.FollowUps = s.followUps(policy, decision, now)
	return decision
}

func (s *MaintenanceService) profileFor(category string) categoryProfile {
	normalized := strings.ToLower(strings.TrimSpace(category))
	if profile, ok := categoryProfiles[normalized]; ok {
		return profile
	}
	return categoryProfiles["general"]
}

// classifyPriority applies keyword escalation on top of the category base.
func (s *MaintenanceService) classifyPriority(base constants.Priority, extraction *models.MaintenanceExtraction) constants.Priority {
	text := strings.ToLower(extraction.Summary + " " + extraction.Description)

	for _, kw := range emergencyKeywords {
		if strings.Contains(text, kw) {
			return constants.PriorityEmergency
		}
	}
	for _, kw := range urgentKeywords {
		if strings.Contains(text, kw) {
			return raisePriority(base)
		}
	}
	return base
}

func raisePriority(p constants.Priority) constants.Priority {
	switch p {
	case constants.PriorityLow:
		return constants.PriorityMedium
	case constants.PriorityMedium:
		return constants.PriorityHigh
	default:
		return constants.PriorityEmergency
	}
}

// dueAt computes the SLA deadline in the property's local zone. An unknown
// zone falls back to the configured default, then UTC.
func (s *MaintenanceService) dueAt(policy MaintenanceConfig, now time.Time, slaHours int, property *models.Property) time.Time {
	zone := policy.DefaultTimeZone
	if property != nil && property.TimeZone != "" {
		zone = property.TimeZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		loc = time.UTC
	}
	return now.In(loc).Add(time.Duration(slaHours) * time.Hour)
}

// followUps schedules a mid-SLA reminder, an at-due escalation check, and an
// owner approval request when the decision calls for one.
func (s *MaintenanceService) followUps(policy MaintenanceConfig, decision *models.WorkOrderDecision, now time.Time) []models.FollowUpAction {
	halfSLA := time.Duration(decision.SLAHours) * time.Hour / 2

	actions := []models.FollowUpAction{
		{
			Type:         constants.FollowUpReminder,
			ScheduledFor: now.Add(halfSLA),
			Description:  "check progress with assigned vendor",
		},
		{
			Type:         constants.FollowUpEscalation,
			ScheduledFor: decision.DueAt,
			Description:  fmt.Sprintf("escalate if unresolved after %dh SLA", decision.SLAHours),
		},
	}

	if decision.RequiresOwnerApproval {
		actions = append(actions, models.FollowUpAction{
			Type:         constants.FollowUpOwnerApproval,
			ScheduledFor: now,
			Description:  fmt.Sprintf("request owner approval for estimated cost up to %.2f", decision.MaxCost),
			Payload:      map[string]string{"max_cost": fmt.Sprintf("%.2f", decision.MaxCost)},
		})
	}

	return filterFollowUps(policy, actions)
}

func filterFollowUps(policy MaintenanceConfig, actions []models.FollowUpAction) []models.FollowUpAction {
	if len(policy.AllowedFollowUps) == 0 {
		return actions
	}
	allowed := make(map[constants.FollowUpType]bool, len(policy.AllowedFollowUps))
	for _, t := range policy.AllowedFollowUps {
		allowed[t] = true
	}
	filtered := actions[:0]
	for _, a := range actions {
		if allowed[a.Type] {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
