package domain

// HealthStatus é o resultado da classificação de uma métrica
type HealthStatus string

const (
	HealthSuccess HealthStatus = "success"
	HealthWarning HealthStatus = "warning"
	HealthDanger  HealthStatus = "danger"
	// HealthNeutral representa ausência de valor. Nunca é produzido pela classificação.
	HealthNeutral HealthStatus = "neutral"
)

func (s HealthStatus) Label() string {
	switch s {
	case HealthSuccess:
		return "Saudável"
	case HealthWarning:
		return "Atenção"
	case HealthDanger:
		return "Crítico"
	default:
		return "Sem dados"
	}
}

// Color retorna a cor de exibição do status
func (s HealthStatus) Color() string {
	switch s {
	case HealthSuccess:
		return "green"
	case HealthWarning:
		return "yellow"
	case HealthDanger:
		return "red"
	default:
		return "gray"
	}
}
