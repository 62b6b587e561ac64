package domain

import "github.com/golang-jwt/jwt/v5"

// Papéis aceitos nos tokens
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
