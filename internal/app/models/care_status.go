package models

// CareStatus is the shared life cycle of barriers and care plans.
// Entities start active and may transition once to completed.
type CareStatus string

const (
	CareStatusActive    CareStatus = "active"
	CareStatusCompleted CareStatus = "completed"
)

func (s CareStatus) IsValid() bool {
	return s == CareStatusActive || s == CareStatusCompleted
}

// CanTransitionTo reports whether moving from s to target is allowed.
// completed is terminal; reopening is unsupported.
func (s CareStatus) CanTransitionTo(target CareStatus) bool {
	if !target.IsValid() {
		return false
	}
	if s == target {
		return true
	}
	return s == CareStatusActive && target == CareStatusCompleted
}
