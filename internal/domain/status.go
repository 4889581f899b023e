package domain

import "strings"

// PlanStatus is the production status of a loading plan.
type PlanStatus string

const (
	PlanPending    PlanStatus = "Pending"
	PlanInProgress PlanStatus = "In Progress"
	PlanDone       PlanStatus = "Done"
)

var planStatusCodes = map[string]PlanStatus{
	"pending":     PlanPending,
	"in progress": PlanInProgress,
	"in_progress": PlanInProgress,
	"done":        PlanDone,
}

// ParsePlanStatus returns the plan status for a label (case-insensitive).
func ParsePlanStatus(label string) (PlanStatus, bool) {
	status, ok := planStatusCodes[strings.ToLower(strings.TrimSpace(label))]

	return status, ok
}

// DevelopmentStatus is the approval state of a development item.
type DevelopmentStatus string

const (
	DevelopmentPending  DevelopmentStatus = "Pending"
	DevelopmentApproved DevelopmentStatus = "Approved"
	DevelopmentRejected DevelopmentStatus = "Rejected"
)

// Terminal reports whether no further transition is allowed.
func (s DevelopmentStatus) Terminal() bool {
	return s == DevelopmentApproved || s == DevelopmentRejected
}
