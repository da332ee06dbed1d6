package insighting

import (
	"errors"
	"fmt"
)

var (
	ErrOfferIDRequired   = errors.New("offer ID is required")
	ErrSubjectIDRequired = errors.New("subject ID is required")
	ErrInvalidPeriod     = errors.New("invalid period")
	ErrInvalidMetric     = errors.New("invalid metric kind")
)

// InsightError é um erro com contexto adicional para o painel
type InsightError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

func (e *InsightError) ErrorCode() string {
	return e.Code
}

func NewInsightError(err error, code string, details string) *InsightError {
	return &InsightError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
