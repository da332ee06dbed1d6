package domain

// MetricKind identifica uma métrica classificável por faixas de threshold
type MetricKind string

const (
	MetricROAS MetricKind = "roas"
	MetricIC   MetricKind = "ic"
	MetricCPC  MetricKind = "cpc"
)

// AllMetricKinds retorna as métricas classificáveis em ordem de exibição
func AllMetricKinds() []MetricKind {
	return []MetricKind{MetricROAS, MetricIC, MetricCPC}
}

func (k MetricKind) Valid() bool {
	switch k {
	case MetricROAS, MetricIC, MetricCPC:
		return true
	}
	return false
}

// HigherIsBetter indica a direção da comparação. Somente ROAS é "quanto maior melhor";
// IC e CPC são custos, portanto "quanto menor melhor".
func (k MetricKind) HigherIsBetter() bool {
	return k == MetricROAS
}

func (k MetricKind) Label() string {
	switch k {
	case MetricROAS:
		return "ROAS"
	case MetricIC:
		return "IC"
	case MetricCPC:
		return "CPC"
	}
	return string(k)
}
