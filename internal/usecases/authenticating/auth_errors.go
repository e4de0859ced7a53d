package authenticating

import "errors"

var (
	ErrAuthDisabled    = errors.New("autenticação da API desabilitada: AUTH_SECRET não configurado")
	ErrInvalidToken    = errors.New("token inválido")
	ErrExpiredToken    = errors.New("token expirado")
	ErrMissingOperator = errors.New("operador não informado")
	ErrInvalidTokenTTL = errors.New("validade do token deve ser positiva")
)
