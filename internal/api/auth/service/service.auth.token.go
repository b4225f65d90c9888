package authsvc

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/auth/models"
)

var errEmptySecret = errors.New("jwt secret is empty")

// IssueToken ký JWT HS256 với claims userId, iat, exp
func IssueToken(secret string, userID string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", errEmptySecret
	}
	claims := models.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken xác thực chữ ký, thuật toán, hạn dùng và claim userId của token
func ParseToken(secret string, tokenString string) (*models.TokenClaims, error) {
	if secret == "" {
		return nil, errEmptySecret
	}

	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, errors.New("token has no userId claim")
	}
	return claims, nil
}
