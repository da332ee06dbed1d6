package domain

// SubjectRanking é a posição de um criativo (ou oferta) no ranking de uma métrica
type SubjectRanking struct {
	SubjectID        string       `json:"subject_id"`
	Metric           MetricKind   `json:"metric"`
	Value            float64      `json:"value"`
	Spend            float64      `json:"spend"`
	Status           HealthStatus `json:"status"`
	Position         int          `json:"position"`
	PositionChange   int          `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int          `json:"previous_position"`
}
