package requests

type CreateRedFlag struct {
	MemberID  string `json:"memberId" validate:"required,object_id"`
	TypeID    string `json:"typeId" validate:"required"`
	Notes     string `json:"notes,omitempty" validate:"max=4096"`
	CreatedBy string
}

type UpdateRedFlag struct {
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=4096"`
	Status    *string `json:"status,omitempty" validate:"omitempty,oneof=active completed"`
	RedFlagID string
	UpdatedBy string
}

type FindRedFlagsByMember struct {
	MemberID string `validate:"required,object_id"`
}
