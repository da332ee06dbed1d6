package thresholding

import (
	"errors"
	"fmt"

	"github.com/vfg2006/offer-health-engine/internal/domain"
)

// Erros de edição das métricas esperadas
var (
	ErrInvalidThresholdValue = errors.New("invalid threshold value")
	ErrNegativeThreshold     = errors.New("threshold cannot be negative")
	ErrUnknownMetric         = errors.New("unknown metric kind")
)

// ThresholdError é um erro de validação de um campo do formulário de thresholds
type ThresholdError struct {
	Err      error             // Erro base
	Code     string            // Código de erro para API
	Kind     domain.MetricKind // Métrica envolvida
	Boundary string            // "green" ou "yellow"
	Details  string            // Mensagem para o operador
}

func (e *ThresholdError) Error() string {
	field := string(e.Kind)
	if e.Boundary != "" {
		field = fmt.Sprintf("%s.%s", e.Kind, e.Boundary)
	}
	return fmt.Sprintf("%s: %s", field, e.Err.Error())
}

func (e *ThresholdError) Unwrap() error {
	return e.Err
}

func (e *ThresholdError) ErrorCode() string {
	return e.Code
}

func NewThresholdError(err error, code string, kind domain.MetricKind, boundary string, details string) *ThresholdError {
	return &ThresholdError{
		Err:      err,
		Code:     code,
		Kind:     kind,
		Boundary: boundary,
		Details:  details,
	}
}
