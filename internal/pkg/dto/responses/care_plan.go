package responses

import "time"

type CarePlan struct {
	ID        string     `json:"id"`
	MemberID  string     `json:"memberId"`
	TypeID    string     `json:"typeId"`
	BarrierID string     `json:"barrierId"`
	Notes     string     `json:"notes,omitempty"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Status    string     `json:"status"`
	CreatedBy string     `json:"createdBy"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CreatedCarePlan struct {
	ID string `json:"id"`
}

type DeletedCarePlan struct {
	Deleted bool `json:"deleted"`
}
