package account

import "errors"

var (
	// ErrAccountNotFound indica que a conta não existe no repositório
	ErrAccountNotFound = errors.New("conta não encontrada")

	// ErrShopTokenMissing indica que a loja vinculada não possui token configurado
	ErrShopTokenMissing = errors.New("nenhum token configurado para a loja vinculada")
)
