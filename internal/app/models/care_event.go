package models

import "time"

// CareEvent is the payload published to the alerting queue whenever a
// red flag, barrier, or care plan is created or changes status.
type CareEvent struct {
	ID         string    `json:"id"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	MemberID   string    `json:"member_id"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
