package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kanban-api/domain/models"
)

// GenerateIdentityToken signs a token carrying the user's identity. The
// token is informational: no credential was checked to obtain it and no
// route requires it.
func GenerateIdentityToken(user *models.User, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
