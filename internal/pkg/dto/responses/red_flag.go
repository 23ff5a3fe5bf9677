package responses

import "time"

type RedFlag struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"memberId"`
	TypeID    string    `json:"typeId"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreatedRedFlag struct {
	ID string `json:"id"`
}
