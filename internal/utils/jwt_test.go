package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
)

func TestTokenRoundTrip(t *testing.T) {
	j := NewJWTUtil("test-secret")

	tokenStr, err := j.GenerateToken("u1", "master")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	token, err := j.ValidateToken(tokenStr)
	if err != nil || !token.Valid {
		t.Fatalf("validate: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["user_id"] != "u1" || claims["role"] != "master" {
		t.Errorf("claims = %v", claims)
	}
	if jti, _ := claims["jti"].(string); len(jti) != 10 {
		t.Errorf("jti = %v", claims["jti"])
	}
}

func TestTokenWrongSecret(t *testing.T) {
	tokenStr, err := NewJWTUtil("secret-a").GenerateToken("u1", "client")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if token, err := NewJWTUtil("secret-b").ValidateToken(tokenStr); err == nil && token.Valid {
		t.Error("token signed with another secret validated")
	}
}
