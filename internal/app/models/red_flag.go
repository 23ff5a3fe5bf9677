package models

import (
	"carehub-service/internal/pkg/dto/responses"
	"time"
)

type RedFlag struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	MemberID  string     `json:"memberId" bson:"memberId"`
	TypeID    string     `json:"typeId" bson:"typeId"`
	Notes     string     `json:"notes,omitempty" bson:"notes,omitempty"`
	Status    CareStatus `json:"status,omitempty" bson:"status,omitempty"`
	CreatedBy string     `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}

func (rf RedFlag) ConvertIntoResponse() responses.RedFlag {
	return responses.RedFlag{
		ID:        rf.ID,
		MemberID:  rf.MemberID,
		TypeID:    rf.TypeID,
		Notes:     rf.Notes,
		Status:    string(rf.Status),
		CreatedBy: rf.CreatedBy,
		CreatedAt: rf.CreatedAt,
		UpdatedAt: rf.UpdatedAt,
	}
}
