package reconciling

import (
	"fmt"

	"github.com/vfg2006/offer-health-engine/internal/domain"
	"github.com/vfg2006/offer-health-engine/pkg/apiErrors"
	"github.com/vfg2006/offer-health-engine/pkg/utils"
)

// Reconcile valida uma submissão de métricas para um (sujeito, data) contra o
// registro já existente para a mesma chave, se houver.
//
// Sem registro existente, os cinco campos são obrigatórios e o resultado é o
// próprio valor submetido. Com registro existente, apenas os campos selecionados
// são comparados; o resultado traz os deltas dos que mudaram e mantém os demais
// campos do registro existente. Uma edição sem nenhuma mudança é rejeitada.
//
// Toda rejeição é um *ValidationError. Nenhum argumento é modificado.
func Reconcile(existing *domain.DailyMetricRecord, proposed domain.MetricSubmission, selected domain.FieldSet) (*domain.ReconcileResult, error) {
	if proposed.SubjectID == "" {
		return nil, NewValidationError(ErrSubjectRequired, apiErrors.ErrMissingRequiredData, "Selecione a oferta ou criativo")
	}
	if proposed.Date.IsZero() {
		return nil, NewValidationError(ErrDateRequired, apiErrors.ErrMissingRequiredData, "Selecione a data das métricas")
	}

	if existing == nil {
		return reconcileNew(proposed)
	}

	return reconcileEdit(*existing, proposed, selected)
}

func reconcileNew(proposed domain.MetricSubmission) (*domain.ReconcileResult, error) {
	// a obrigatoriedade é verificada no texto bruto, antes da conversão:
	// um campo em branco seria convertido para 0 e passaria despercebido
	for _, field := range domain.AllMetricFields() {
		if utils.IsBlank(proposed.Values[field]) {
			return nil, NewFieldRequiredError(field)
		}
	}
	for _, field := range domain.AllMetricFields() {
		if err := validateCount(field, proposed.Values[field]); err != nil {
			return nil, err
		}
	}

	merged := domain.DailyMetricRecord{
		SubjectID:   proposed.SubjectID,
		SubjectType: proposed.SubjectType,
		Date:        utils.StartOfDay(proposed.Date),
	}
	for _, field := range domain.AllMetricFields() {
		merged.SetField(field, parseField(field, proposed.Values[field]))
	}

	return &domain.ReconcileResult{
		Merged: merged,
		IsNew:  true,
	}, nil
}

func reconcileEdit(existing domain.DailyMetricRecord, proposed domain.MetricSubmission, selected domain.FieldSet) (*domain.ReconcileResult, error) {
	if existing.SubjectID != proposed.SubjectID || existing.DateKey() != utils.FormatLocalDate(proposed.Date) {
		return nil, NewValidationError(ErrKeyMismatch, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("O registro existente pertence a %s em %s", existing.SubjectID, existing.DateKey()))
	}

	if len(selected) == 0 {
		return nil, &ValidationError{
			Err:     ErrNoFieldSelected,
			Code:    apiErrors.ErrNoFieldSelected,
			Details: "Selecione pelo menos um campo para editar",
		}
	}

	for field := range selected {
		if !field.Valid() {
			return nil, &ValidationError{
				Err:     ErrUnknownField,
				Code:    apiErrors.ErrInvalidFormat,
				Field:   field,
				Details: fmt.Sprintf("Campo desconhecido: %s", field),
			}
		}
	}

	for _, field := range domain.AllMetricFields() {
		if !selected.Has(field) {
			continue
		}
		if err := validateCount(field, proposed.Values[field]); err != nil {
			return nil, err
		}
	}

	merged := existing
	deltas := make(map[domain.MetricField]domain.MetricDelta)

	for _, field := range domain.AllMetricFields() {
		if !selected.Has(field) {
			continue
		}

		oldValue := existing.Field(field)
		newValue := parseField(field, proposed.Values[field])
		if oldValue == newValue {
			continue
		}

		deltas[field] = domain.MetricDelta{Old: oldValue, New: newValue}
		merged.SetField(field, newValue)
	}

	if len(deltas) == 0 {
		return nil, &ValidationError{
			Err:     ErrNoChangeDetected,
			Code:    apiErrors.ErrNoChangeDetected,
			Details: "Nenhum valor foi alterado",
		}
	}

	return &domain.ReconcileResult{
		Merged: merged,
		Deltas: deltas,
	}, nil
}

// validateCount barra contagens que não cabem no registro. Texto que nem é
// número segue a regra geral e vale 0.
func validateCount(field domain.MetricField, text string) *ValidationError {
	if !field.IsInteger() {
		return nil
	}

	value, ok := utils.ParseNumericStrict(text)
	if !ok {
		return nil
	}

	if _, fits := utils.ParseIntegerStrict(text); !fits || value < 0 {
		return NewInvalidCountError(field, text)
	}
	return nil
}

// parseField converte o texto; vazio ou inválido vale 0. Contagens são truncadas.
func parseField(field domain.MetricField, text string) float64 {
	if field.IsInteger() {
		return float64(utils.ParseInteger(text))
	}
	return utils.ParseNumeric(text)
}
