// Package apperr carries the error taxonomy that the HTTP layer maps to
// status codes. Services return these; handlers never build status codes
// themselves.
package apperr

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindUnauthorized
	KindForbidden
	KindNotFound
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, never sent to clients
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *AppError   { return New(KindValidation, message) }
func Conflict(message string) *AppError     { return New(KindConflict, message) }
func Unauthorized(message string) *AppError { return New(KindUnauthorized, message) }
func Forbidden(message string) *AppError    { return New(KindForbidden, message) }
func NotFound(message string) *AppError     { return New(KindNotFound, message) }
func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: MsgInternalError, Err: err}
}

// Client-facing messages. The API speaks Portuguese.
const (
	MsgInternalError         = "Erro interno do servidor"
	MsgUnauthorized          = "Não autorizado"
	MsgAccessDenied          = "Acesso não autorizado"
	MsgTokenMissing          = "Token não fornecido"
	MsgInvalidPayload        = "Dados inválidos"
	MsgRequiredFields        = "Todos os campos são obrigatórios"
	MsgEmailPasswordRequired = "Email e senha são obrigatórios"
	MsgPlanNotFound          = "Plano não encontrado ou inativo"
	MsgPlanInvalid           = "Plano inválido"
	MsgSubscriptionExists    = "Usuário já possui uma assinatura ativa"
	MsgSubscriptionNotFound  = "Assinatura não encontrada"
	MsgPaymentNotFound       = "Pagamento não encontrado"
	MsgPaymentProcessFailed  = "Erro ao processar pagamento"
	MsgPaymentCheckFailed    = "Erro ao verificar pagamento"
	MsgCourseNotFound        = "Curso não encontrado"
	MsgRequestExists         = "Já existe uma solicitação para este curso"
	MsgRequestNotFound       = "Solicitação não encontrada"
	MsgInvalidStatus         = "Status inválido"
	MsgInvalidTransaction    = "Transação inválida"
)
