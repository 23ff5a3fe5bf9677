package responses

type RedFlagType struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type CarePlanType struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	IsCustom    bool   `json:"isCustom"`
}

// BarrierType carries the allowed care plan types inline for display.
type BarrierType struct {
	ID            string         `json:"id"`
	Description   string         `json:"description"`
	Domain        string         `json:"domain"`
	CarePlanTypes []CarePlanType `json:"carePlanTypes"`
}
