// internal/common/utils/jwt.go
// JWT token generation and validation for simulated sessions

package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// JWTClaims carries the session identity inside access tokens
type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	// Standard JWT claims
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
	Issuer    string `json:"iss"`
}

// GenerateJWT creates a new signed access token
func GenerateJWT(claims *JWTClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": claims.UserID,
		"email":   claims.Email,
		"name":    claims.Name,
		"exp":     claims.ExpiresAt,
		"iat":     claims.IssuedAt,
		"iss":     claims.Issuer,
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateJWT validates a token and returns its claims
func ValidateJWT(tokenString string, secret string) (*JWTClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userID := getStringClaim(claims, "user_id")
		if userID == "" {
			return nil, errors.New("invalid user_id in token")
		}

		return &JWTClaims{
			UserID:    userID,
			Email:     getStringClaim(claims, "email"),
			Name:      getStringClaim(claims, "name"),
			ExpiresAt: getInt64Claim(claims, "exp"),
			IssuedAt:  getInt64Claim(claims, "iat"),
			Issuer:    getStringClaim(claims, "iss"),
		}, nil
	}

	return nil, errors.New("invalid token")
}

// Helper functions to safely extract claims

func getStringClaim(claims jwt.MapClaims, key string) string {
	if val, ok := claims[key].(string); ok {
		return val
	}
	return ""
}

func getInt64Claim(claims jwt.MapClaims, key string) int64 {
	if val, ok := claims[key].(float64); ok {
		return int64(val)
	}
	return 0
}
