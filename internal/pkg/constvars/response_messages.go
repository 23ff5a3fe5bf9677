package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Care wizard messages
	CareWizardSubmitSuccess = "care wizard submitted successfully"

	// Red flag messages
	RedFlagCreatedSuccess  = "red flag created successfully"
	RedFlagUpdatedSuccess  = "red flag updated successfully"
	GetRedFlagsSuccess     = "get red flags successfully"
	GetRedFlagTypesSuccess = "get red flag types successfully"

	// Barrier messages
	BarrierCreatedSuccess  = "barrier created successfully"
	BarrierUpdatedSuccess  = "barrier updated successfully"
	GetBarriersSuccess     = "get barriers successfully"
	GetBarrierTypesSuccess = "get barrier types successfully"

	// Care plan messages
	CarePlanCreatedSuccess  = "care plan created successfully"
	CarePlanUpdatedSuccess  = "care plan updated successfully"
	CarePlanDeletedSuccess  = "care plan deleted successfully"
	GetCarePlansSuccess     = "get care plans successfully"
	GetCarePlanTypesSuccess = "get care plan types successfully"
)
