package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica o operador do dashboard no token da API.
type Claims struct {
	Operator string `json:"operator"`
	jwt.RegisteredClaims
}
