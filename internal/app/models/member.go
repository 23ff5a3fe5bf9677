package models

// Member is the subset of the external member service's record the core
// cares about. Member management itself lives outside this service.
type Member struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Active    bool   `json:"active"`
}
