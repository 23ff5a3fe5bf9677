package requests

import "time"

// CareWizardSubmission creates one red flag plus all of its barriers and
// care plans in a single call.
type CareWizardSubmission struct {
	MemberID  string        `json:"memberId" validate:"required,object_id"`
	RedFlag   WizardRedFlag `json:"redFlag" validate:"required"`
	CreatedBy string
}

type WizardRedFlag struct {
	TypeID   string          `json:"typeId" validate:"required"`
	Notes    string          `json:"notes,omitempty" validate:"max=4096"`
	Barriers []WizardBarrier `json:"barriers" validate:"max=20,dive"`
}

type WizardBarrier struct {
	TypeID    string           `json:"typeId" validate:"required"`
	Notes     string           `json:"notes,omitempty" validate:"max=4096"`
	CarePlans []WizardCarePlan `json:"carePlans" validate:"max=20,dive"`
}

type WizardCarePlan struct {
	Type    CarePlanTypeReference `json:"type"`
	Notes   string                `json:"notes,omitempty" validate:"max=4096"`
	DueDate *time.Time            `json:"dueDate,omitempty"`
}
