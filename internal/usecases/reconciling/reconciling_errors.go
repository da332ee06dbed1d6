package reconciling

import (
	"errors"
	"fmt"
	"math"

	"github.com/vfg2006/offer-health-engine/internal/domain"
	"github.com/vfg2006/offer-health-engine/pkg/apiErrors"
)

// Erros de validação da submissão de métricas
var (
	ErrSubjectRequired  = errors.New("subject is required")
	ErrDateRequired     = errors.New("date is required")
	ErrFieldRequired    = errors.New("field is required")
	ErrUnknownField     = errors.New("unknown metric field")
	ErrKeyMismatch      = errors.New("submission does not match the existing record")
	ErrNoFieldSelected  = errors.New("select at least one field")
	ErrNoChangeDetected = errors.New("no change detected")
	ErrInvalidCount     = errors.New("count out of range")
)

// ValidationError é a rejeição local de uma submissão. O chamador apresenta a
// mensagem ao operador e o mantém na etapa atual; nada foi alterado.
type ValidationError struct {
	Err     error              // Erro base, comparável com errors.Is
	Code    string             // Código de erro para API
	Field   domain.MetricField // Campo envolvido, quando aplicável
	Message string             // Mensagem curta e estável
	Details string             // Mensagem para o operador
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) ErrorCode() string {
	return e.Code
}

func NewValidationError(err error, code string, details string) *ValidationError {
	return &ValidationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewFieldRequiredError gera a mensagem "<campo> is required"
func NewFieldRequiredError(field domain.MetricField) *ValidationError {
	return &ValidationError{
		Err:     ErrFieldRequired,
		Code:    apiErrors.ErrMissingRequiredData,
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
		Details: fmt.Sprintf("O campo %s é obrigatório", field.Label()),
	}
}

// NewInvalidCountError rejeita contagens negativas ou grandes demais para um inteiro
func NewInvalidCountError(field domain.MetricField, text string) *ValidationError {
	return &ValidationError{
		Err:     ErrInvalidCount,
		Code:    apiErrors.ErrInvalidFormat,
		Field:   field,
		Message: fmt.Sprintf("%s is out of range", field),
		Details: fmt.Sprintf("O campo %s deve ser uma contagem entre 0 e %d: %q", field.Label(), math.MaxInt, text),
	}
}
