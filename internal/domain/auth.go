package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são emitidas pelo serviço de identidade; aqui apenas validamos o token
type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}
