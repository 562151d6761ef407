package domain

// SlotStatus is the approval state attached to an individual slot record.
// The empty value means the slot carries no approval gate.
type SlotStatus string

const (
	SlotApproved SlotStatus = "approved"
	SlotPending  SlotStatus = "pending"
	SlotRejected SlotStatus = "rejected"
)

// Counts reports whether a checked slot with this status is active.
func (s SlotStatus) Counts() bool {
	return s == SlotApproved || s == ""
}

// UnitStatus is the completion state of a unit-of-work log record.
// Values other than the constants below are accepted and only count toward totals.
type UnitStatus string

const (
	UnitCompleted  UnitStatus = "completed"
	UnitInProgress UnitStatus = "in-progress"
)

// PlanningStatus classifies a planning item relative to the current date.
type PlanningStatus string

const (
	PlanningScheduled PlanningStatus = "scheduled"
	PlanningHistory   PlanningStatus = "history"
)

// Direction is a month navigation step.
type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// ValidUnitStatuses lists the statuses offered by interactive entry forms.
var ValidUnitStatuses = []UnitStatus{UnitCompleted, UnitInProgress, "rejected"}
