package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"kanban-api/domain/models"
)

func TestGenerateIdentityToken(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "42", Email: "grace@example.com", Role: "member"}
	secret := "test-secret"

	signed, err := GenerateIdentityToken(user, secret)
	if err != nil {
		t.Fatalf("GenerateIdentityToken: %v", err)
	}

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		t.Fatal("expected valid map claims")
	}
	if claims["user_id"] != "42" || claims["email"] != "grace@example.com" || claims["role"] != "member" {
		t.Errorf("claims = %v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("expected an expiry claim")
	}
}
