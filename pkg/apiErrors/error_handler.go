package apiErrors

// Códigos de erro estáveis, expostos a quem apresenta a mensagem ao operador
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrNoFieldSelected     = "VAL_004" // Nenhum campo selecionado para edição
	ErrNoChangeDetected    = "VAL_005" // Edição sem nenhuma alteração real
	ErrInvalidPeriod       = "VAL_006" // Período inválido

	// Erros do servidor (SRV)
	ErrInternalServer  = "SRV_001" // Erro interno
	ErrExternalService = "SRV_003" // Erro em colaborador externo (leitura/gravação de registros)
)

var validationCodes = map[string]bool{
	ErrInvalidRequest:      true,
	ErrMissingRequiredData: true,
	ErrInvalidFormat:       true,
	ErrNoFieldSelected:     true,
	ErrNoChangeDetected:    true,
	ErrInvalidPeriod:       true,
}

// APIError representa um erro padronizado para o chamador
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

func (e APIError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// IsValidation indica se o código representa um erro corrigível pelo usuário
func IsValidation(code string) bool {
	return validationCodes[code]
}

// Coder é implementado pelos erros de casos de uso que carregam um código
type Coder interface {
	ErrorCode() string
}

// FromError cria um erro de API a partir de um erro Go.
// Se o erro já carrega um código, ele é preservado.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	if coder, ok := err.(Coder); ok && coder.ErrorCode() != "" {
		code = coder.ErrorCode()
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
