package responses

import "time"

type Barrier struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"memberId"`
	TypeID    string    `json:"typeId"`
	RedFlagID string    `json:"redFlagId"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreatedBarrier struct {
	ID string `json:"id"`
}
