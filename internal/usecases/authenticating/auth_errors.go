package authenticating

import (
	"errors"
)

// Tipos de erros de autenticação
var (
	ErrMissingToken = errors.New("token ausente")
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
)
