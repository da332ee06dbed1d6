package domain

import "time"

// MetricDelta registra a mudança de um campo. Só existe quando Old != New.
type MetricDelta struct {
	Old float64 `json:"old"`
	New float64 `json:"new"`
}

// MetricSubmission carrega o texto bruto digitado pelo operador para um (sujeito, data)
type MetricSubmission struct {
	SubjectID   string                 `json:"subject_id"`
	SubjectType SubjectType            `json:"subject_type"`
	Date        time.Time              `json:"date"`
	Values      map[MetricField]string `json:"values"`
}

// ReconcileResult é o registro resultante de uma submissão aceita
type ReconcileResult struct {
	Merged DailyMetricRecord           `json:"merged"`
	Deltas map[MetricField]MetricDelta `json:"deltas,omitempty"`
	IsNew  bool                        `json:"is_new"`
}
