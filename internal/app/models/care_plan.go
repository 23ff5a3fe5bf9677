package models

import (
	"carehub-service/internal/pkg/dto/responses"
	"time"
)

type CarePlan struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	MemberID  string     `json:"memberId" bson:"memberId"`
	TypeID    string     `json:"typeId" bson:"typeId"`
	BarrierID string     `json:"barrierId" bson:"barrierId"`
	Notes     string     `json:"notes,omitempty" bson:"notes,omitempty"`
	DueDate   *time.Time `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	Status    CareStatus `json:"status" bson:"status"`
	CreatedBy string     `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}

func (cp CarePlan) ConvertIntoResponse() responses.CarePlan {
	return responses.CarePlan{
		ID:        cp.ID,
		MemberID:  cp.MemberID,
		TypeID:    cp.TypeID,
		BarrierID: cp.BarrierID,
		Notes:     cp.Notes,
		DueDate:   cp.DueDate,
		Status:    string(cp.Status),
		CreatedBy: cp.CreatedBy,
		CreatedAt: cp.CreatedAt,
		UpdatedAt: cp.UpdatedAt,
	}
}
