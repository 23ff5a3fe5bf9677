package requests

// CarePlanTypeReference is a discriminated reference to a care plan type:
// exactly one of ExistingID or CustomDescription must be set.
type CarePlanTypeReference struct {
	ExistingID        string `json:"existingId,omitempty"`
	CustomDescription string `json:"customDescription,omitempty"`
}

func (r CarePlanTypeReference) IsValid() bool {
	return (r.ExistingID == "") != (r.CustomDescription == "")
}
