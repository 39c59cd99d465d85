package authenticating

import "errors"

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("usuário desativado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrUserAlreadyExists  = errors.New("email já cadastrado")
	ErrMissingData        = errors.New("dados obrigatórios ausentes")
	ErrWeakPassword       = errors.New("a senha não atende aos requisitos mínimos")
	ErrInvalidToken       = errors.New("token inválido")
)

// AuthError associa um erro de autenticação a um código de API e mensagem
// amigável para o cliente
type AuthError struct {
	Err     error
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(err error, code, message string) *AuthError {
	return &AuthError{
		Err:     err,
		Code:    code,
		Message: message,
	}
}
