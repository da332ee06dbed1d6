package domain

// HealthReport combina o resumo do período com a classificação de cada métrica
type HealthReport struct {
	OfferID    string                      `json:"offer_id"`
	SubjectID  string                      `json:"subject_id"`
	Period     PeriodSelector              `json:"period"`
	Summary    AggregateSummary            `json:"summary"`
	Thresholds ThresholdSet                `json:"thresholds"`
	Status     map[MetricKind]HealthStatus `json:"status"`
}
