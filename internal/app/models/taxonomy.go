package models

type RedFlagType struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Description string `json:"description" bson:"description"`
}

type BarrierType struct {
	ID              string   `json:"id" bson:"_id,omitempty"`
	Description     string   `json:"description" bson:"description"`
	Domain          string   `json:"domain" bson:"domain"`
	CarePlanTypeIDs []string `json:"carePlanTypeIds" bson:"carePlanTypeIds"`
}

type CarePlanType struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Description string `json:"description" bson:"description"`
	IsCustom    bool   `json:"isCustom" bson:"isCustom"`
}
