package authenticating

import "errors"

var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrMissingSecret = errors.New("AUTH_SECRET não configurado")
)
