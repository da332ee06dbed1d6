package thresholding

import (
	"fmt"

	"github.com/vfg2006/offer-health-engine/internal/domain"
	"github.com/vfg2006/offer-health-engine/pkg/apiErrors"
	"github.com/vfg2006/offer-health-engine/pkg/utils"
)

// ThresholdInput é o texto digitado para uma métrica no formulário de métricas esperadas
type ThresholdInput struct {
	Green  string
	Yellow string
}

type ThresholdForm map[domain.MetricKind]ThresholdInput

// ApplyThresholdEdits monta o novo ThresholdSet completo a partir do atual e do formulário.
//
// Campo em branco mantém o valor atual. Um "0" digitado é um valor válido e é aplicado;
// texto que não é número é rejeitado em vez de cair silenciosamente no valor anterior.
// Nenhuma alteração é aplicada se qualquer campo for inválido.
func ApplyThresholdEdits(current domain.ThresholdSet, form ThresholdForm) (domain.ThresholdSet, error) {
	for kind := range form {
		if !kind.Valid() {
			return current, NewThresholdError(ErrUnknownMetric, apiErrors.ErrInvalidFormat, kind, "",
				fmt.Sprintf("Métrica desconhecida: %s", kind))
		}
	}

	result := current
	for _, kind := range domain.AllMetricKinds() {
		input, ok := form[kind]
		if !ok {
			continue
		}

		threshold, _ := current.For(kind)

		green, err := parseBoundary(kind, "green", input.Green, threshold.Green)
		if err != nil {
			return current, err
		}

		yellow, err := parseBoundary(kind, "yellow", input.Yellow, threshold.Yellow)
		if err != nil {
			return current, err
		}

		result = result.With(kind, domain.Threshold{Green: green, Yellow: yellow})
	}

	return result, nil
}

func parseBoundary(kind domain.MetricKind, boundary string, text string, current float64) (float64, error) {
	if utils.IsBlank(text) {
		return current, nil
	}

	value, ok := utils.ParseNumericStrict(text)
	if !ok {
		return current, NewThresholdError(ErrInvalidThresholdValue, apiErrors.ErrInvalidFormat, kind, boundary,
			fmt.Sprintf("Valor inválido para %s (%s): %q", kind.Label(), boundary, text))
	}

	if value < 0 {
		return current, NewThresholdError(ErrNegativeThreshold, apiErrors.ErrInvalidFormat, kind, boundary,
			fmt.Sprintf("O valor de %s (%s) não pode ser negativo", kind.Label(), boundary))
	}

	return value, nil
}

// CheckDirection lista as métricas com fronteiras invertidas: ROAS com verde abaixo
// do amarelo, IC/CPC com verde acima do amarelo. Não é bloqueante.
func CheckDirection(thresholds domain.ThresholdSet) []domain.MetricKind {
	var inverted []domain.MetricKind

	for _, kind := range domain.AllMetricKinds() {
		threshold, _ := thresholds.For(kind)
		if kind.HigherIsBetter() && threshold.Green < threshold.Yellow {
			inverted = append(inverted, kind)
		}
		if !kind.HigherIsBetter() && threshold.Green > threshold.Yellow {
			inverted = append(inverted, kind)
		}
	}

	return inverted
}
