package utils

import (
	"github.com/golang-jwt/jwt/v5"
	"os"
	"time"

	"carelink/internal/models/db_models"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

type Claims struct {
	Phone string `json:"phone"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// CreateToken mints the session token handed out once onboarding completes.
// The role claim drives the post-auth route groups.
func CreateToken(phone string, role db_models.Role) (string, error) {
	claims := &Claims{
		Phone: phone,
		Role:  string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24 * 30)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}
