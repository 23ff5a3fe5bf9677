package requests

import "time"

type CreateCarePlan struct {
	MemberID  string     `json:"memberId" validate:"required,object_id"`
	TypeID    string     `json:"typeId" validate:"required"`
	BarrierID string     `json:"barrierId" validate:"required,object_id"`
	Notes     string     `json:"notes,omitempty" validate:"max=4096"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	CreatedBy string
}

type UpdateCarePlan struct {
	Notes      *string    `json:"notes,omitempty" validate:"omitempty,max=4096"`
	Status     *string    `json:"status,omitempty" validate:"omitempty,oneof=active completed"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
	CarePlanID string
	UpdatedBy  string
}

type DeleteCarePlan struct {
	CarePlanID       string
	RequestingUserID string
}

type FindCarePlansByMember struct {
	MemberID string `validate:"required,object_id"`
}
