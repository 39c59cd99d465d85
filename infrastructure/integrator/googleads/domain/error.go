package gadsdomain

import "fmt"

// MalformedRowError indica que uma linha retornada pela API não contém um
// campo obrigatório. A linha é descartada sem tentativa de recuperação parcial
type MalformedRowError struct {
	Field string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("linha de métricas malformada: campo obrigatório ausente ou inválido: %s", e.Field)
}

func NewMalformedRowError(field string) *MalformedRowError {
	return &MalformedRowError{Field: field}
}
