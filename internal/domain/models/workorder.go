// This file contains the WorkOrder domain model, its decision bundle, and the
// lifecycle state machine. Transitions are triggered by external actions
// (vendor confirmation, manual resolution, SLA escalation); the decision
// engine only produces the initial bundle.
package models

import (
	"time"

	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

// FollowUpAction is a scheduled action derived from a work order's priority
// and due date, e.g. a mid-SLA reminder or an at-due escalation.
type FollowUpAction struct {
	Type         constants.FollowUpType `json:"type"`
	ScheduledFor time.Time              `json:"scheduled_for"`
	Description  string                 `json:"description"`
	Payload      map[string]string      `json:"payload,omitempty"`
}

// WorkOrderDecision is the bundle produced by the maintenance decision engine
// for one extracted request. It is folded into the persisted WorkOrder by the
// application layer.
type WorkOrderDecision struct {
	Priority              constants.Priority `json:"priority"`
	BusinessImpact        string             `json:"business_impact"`
	RequiresOwnerApproval bool               `json:"requires_owner_approval"`
	Vendor                *Vendor            `json:"vendor,omitempty"`
	EstimatedCost         float64            `json:"estimated_cost"`
	MaxCost               float64            `json:"max_cost"`
	SLAHours              int                `json:"sla_hours"`
	DueAt                 time.Time          `json:"due_at"`
	FollowUps             []FollowUpAction   `json:"follow_ups"`
}

// WorkOrder represents a maintenance job raised from an occupier report.
type WorkOrder struct {
	ID          string  `json:"id" gorm:"primaryKey;size:36"`
	PropertyID  *string `json:"property_id,omitempty" gorm:"size:36;index"`
	SpaceID     *string `json:"space_id,omitempty" gorm:"size:36"`
	OccupierID  *string `json:"occupier_id,omitempty" gorm:"size:36"`
	Category    string  `json:"category" gorm:"size:64;index"`
	Description string  `json:"description" gorm:"type:text"`

	Priority              constants.Priority `json:"priority" gorm:"size:16;index"`
	BusinessImpact        string             `json:"business_impact" gorm:"size:255"`
	RequiresOwnerApproval bool               `json:"requires_owner_approval"`
	EstimatedCost         float64            `json:"estimated_cost"`
	MaxCost               float64            `json:"max_cost"`
	SLAHours              int                `json:"sla_hours"`
	DueAt                 time.Time          `json:"due_at"`

	VendorID *string `json:"vendor_id,omitempty" gorm:"size:36;index"`
	Vendor   *Vendor `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`

	Status constants.WorkOrderStatus `json:"status" gorm:"size:16;index"`

	FollowUps []FollowUpAction `json:"follow_ups" gorm:"serializer:json"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// legalTransitions encodes NEW -> ASSIGNED -> IN_PROGRESS -> RESOLVED|ESCALATED.
// Escalation is additionally reachable from NEW and ASSIGNED, because the SLA
// clock runs from creation regardless of whether a vendor ever confirmed.
var legalTransitions = map[constants.WorkOrderStatus][]constants.WorkOrderStatus{
	constants.WorkOrderStatusNew:        {constants.WorkOrderStatusAssigned, constants.WorkOrderStatusEscalated},
	constants.WorkOrderStatusAssigned:   {constants.WorkOrderStatusInProgress, constants.WorkOrderStatusEscalated},
	constants.WorkOrderStatusInProgress: {constants.WorkOrderStatusResolved, constants.WorkOrderStatusEscalated},
}

// CanTransition reports whether moving to the target status is legal from the
// current one.
func (w *WorkOrder) CanTransition(to constants.WorkOrderStatus) bool {
	for _, next := range legalTransitions[w.Status] {
		if next == to {
			return true
		}
	}
	return false
}

func (w *WorkOrder) transition(to constants.WorkOrderStatus) error {
	if !w.CanTransition(to) {
		return errors.ErrInvalidTransition(string(w.Status), string(to))
	}
	w.Status = to
	w.UpdatedAt = time.Now().UTC()
	return nil
}

// Assign attaches a vendor and moves the order to ASSIGNED.
func (w *WorkOrder) Assign(vendorID string) error {
	if vendorID == "" {
		return errors.ErrInvalidRequest.WithMessage("vendor id is required to assign a work order")
	}
	if err := w.transition(constants.WorkOrderStatusAssigned); err != nil {
		return err
	}
	w.VendorID = &vendorID
	return nil
}

// Confirm records the vendor's acceptance and moves the order to IN_PROGRESS.
func (w *WorkOrder) Confirm() error {
	return w.transition(constants.WorkOrderStatusInProgress)
}

// Resolve closes the order as fixed.
func (w *WorkOrder) Resolve(at time.Time) error {
	if err := w.transition(constants.WorkOrderStatusResolved); err != nil {
		return err
	}
	resolved := at.UTC()
	w.ResolvedAt = &resolved
	return nil
}

// Escalate marks the order as having blown through its SLA.
func (w *WorkOrder) Escalate() error {
	return w.transition(constants.WorkOrderStatusEscalated)
}

// IsTerminal reports whether the order has reached a final state.
func (w *WorkOrder) IsTerminal() bool {
	return w.Status == constants.WorkOrderStatusResolved || w.Status == constants.WorkOrderStatusEscalated
}

// Overdue reports whether the order is past due and still open.
func (w *WorkOrder) Overdue(now time.Time) bool {
	return !w.IsTerminal() && now.After(w.DueAt)
}
