package responses

// CareWizardResult lists every care plan id created by one submission.
// Order is not meaningful; only membership and count are guaranteed.
type CareWizardResult struct {
	IDs []string `json:"ids"`
}
