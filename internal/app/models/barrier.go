package models

import (
	"carehub-service/internal/pkg/dto/responses"
	"time"
)

type Barrier struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	MemberID  string     `json:"memberId" bson:"memberId"`
	TypeID    string     `json:"typeId" bson:"typeId"`
	RedFlagID string     `json:"redFlagId" bson:"redFlagId"`
	Notes     string     `json:"notes,omitempty" bson:"notes,omitempty"`
	Status    CareStatus `json:"status" bson:"status"`
	CreatedBy string     `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}

func (b Barrier) ConvertIntoResponse() responses.Barrier {
	return responses.Barrier{
		ID:        b.ID,
		MemberID:  b.MemberID,
		TypeID:    b.TypeID,
		RedFlagID: b.RedFlagID,
		Notes:     b.Notes,
		Status:    string(b.Status),
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
