package domain

// Valores padrão do sistema, aplicados a toda oferta recém-criada e a qualquer
// métrica ausente ou malformada na configuração persistida
const (
	DefaultROASGreen  = 1.30
	DefaultROASYellow = 1.10
	DefaultICGreen    = 50.0
	DefaultICYellow   = 60.0
	DefaultCPCGreen   = 1.50
	DefaultCPCYellow  = 2.00
)

// Threshold define as fronteiras verde/amarelo de uma métrica.
//
// Para ROAS espera-se Green >= Yellow; para IC e CPC, Green <= Yellow.
// A inversão é um erro de configuração que não é bloqueado, apenas reportado
// por thresholding.CheckDirection.
type Threshold struct {
	Green  float64 `json:"green" mapstructure:"green"`
	Yellow float64 `json:"yellow" mapstructure:"yellow"`
}

// ThresholdSet é a configuração completa de "métricas esperadas" de uma oferta
type ThresholdSet struct {
	ROAS Threshold `json:"roas" mapstructure:"roas"`
	IC   Threshold `json:"ic" mapstructure:"ic"`
	CPC  Threshold `json:"cpc" mapstructure:"cpc"`
}

func DefaultThresholds() ThresholdSet {
	return ThresholdSet{
		ROAS: Threshold{Green: DefaultROASGreen, Yellow: DefaultROASYellow},
		IC:   Threshold{Green: DefaultICGreen, Yellow: DefaultICYellow},
		CPC:  Threshold{Green: DefaultCPCGreen, Yellow: DefaultCPCYellow},
	}
}

// For retorna o threshold da métrica; ok é falso para métricas desconhecidas
func (t ThresholdSet) For(kind MetricKind) (Threshold, bool) {
	switch kind {
	case MetricROAS:
		return t.ROAS, true
	case MetricIC:
		return t.IC, true
	case MetricCPC:
		return t.CPC, true
	}
	return Threshold{}, false
}

// With retorna uma cópia do conjunto com o threshold da métrica substituído
func (t ThresholdSet) With(kind MetricKind, threshold Threshold) ThresholdSet {
	switch kind {
	case MetricROAS:
		t.ROAS = threshold
	case MetricIC:
		t.IC = threshold
	case MetricCPC:
		t.CPC = threshold
	}
	return t
}
