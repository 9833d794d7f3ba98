package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleClient Role = "client"
	RoleMaster Role = "master"
	RoleAdmin  Role = "admin"
)

func ToRole(s string) Role {
	switch Role(s) {
	case RoleClient, RoleMaster, RoleAdmin:
		return Role(s)
	default:
		return RoleClient
	}
}

// User — профиль в KV (`user:<id>`), источник истины для авторизации.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email" validate:"required,email"`
	Name      string    `json:"name" validate:"required"`
	Phone     string    `json:"phone,omitempty"`
	Role      Role      `json:"role" validate:"required,oneof=client master admin"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Credentials хранятся отдельно от профиля (`cred:<email>`).
type Credentials struct {
	UserID       string `json:"userId"`
	PasswordHash string `json:"passwordHash"`
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (c *Credentials) ComparePassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password))
}
