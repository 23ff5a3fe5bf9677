package requests

type CreateBarrier struct {
	MemberID  string `json:"memberId" validate:"required,object_id"`
	TypeID    string `json:"typeId" validate:"required"`
	RedFlagID string `json:"redFlagId" validate:"required,object_id"`
	Notes     string `json:"notes,omitempty" validate:"max=4096"`
	CreatedBy string
}

type UpdateBarrier struct {
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=4096"`
	Status    *string `json:"status,omitempty" validate:"omitempty,oneof=active completed"`
	BarrierID string
	UpdatedBy string
}

type FindBarriersByMember struct {
	MemberID string `validate:"required,object_id"`
}
