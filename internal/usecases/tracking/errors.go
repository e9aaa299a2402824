package tracking

import "errors"

var (
	// ErrBrandForbidden indica que a política de acesso negou a marca
	ErrBrandForbidden = errors.New("marca fora da lista permitida do usuário")
	// ErrRecordNotFound indica que o registro não existe
	ErrRecordNotFound = errors.New("registro não encontrado")
)
