// Package models - User, TokenClaims thuộc domain auth.
package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims chứa data được mã hóa trong JWT token (HS256).
type TokenClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
