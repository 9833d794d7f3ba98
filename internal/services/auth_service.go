package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"repair-app/internal/models"
	"repair-app/internal/repository"
	"repair-app/internal/utils"
)

// Actor — вызывающий, уже прошедший middleware.
type Actor struct {
	ID   string
	Role models.Role
	Name string
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, passwordHash string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetCredentials(ctx context.Context, email string) (*models.Credentials, error)
	UpdateUser(ctx context.Context, user *models.User) error
	GetAll(ctx context.Context) ([]models.User, error)
	GetByRole(ctx context.Context, role models.Role) ([]models.User, error)
}

type AuthService struct {
	userRepo UserRepository
	jwtUtil  *utils.JWTUtil
	store    repository.Store
}

func NewAuthService(userRepo UserRepository, jwtUtil *utils.JWTUtil, store repository.Store) *AuthService {
	return &AuthService{userRepo: userRepo, jwtUtil: jwtUtil, store: store}
}

// Signup создаёт учётные данные и профиль. Роль фиксируется при создании
// и дальше не меняется.
func (s *AuthService) Signup(ctx context.Context, email, password, name, role string) (*models.User, error) {
	hash, err := models.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      models.ToRole(role),
		Blocked:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := utils.ValidateStruct(user); err != nil {
		return nil, models.ErrValidation
	}

	if err := s.userRepo.CreateUser(ctx, user, hash); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	cred, err := s.userRepo.GetCredentials(ctx, email)
	if err != nil {
		log.Printf("Login failed, no credentials for %s", email)
		return "", nil, models.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, cred.UserID)
	if err != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	if user.Blocked {
		log.Printf("Blocked user tried to log in: %s", email)
		return "", nil, models.ErrBlocked
	}

	if err := cred.ComparePassword(password); err != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout отзывает токен: jti попадает в blacklist до истечения exp.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	token, err := s.jwtUtil.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		return errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("invalid token claims")
	}

	jti, ok := claims["jti"].(string)
	if !ok {
		return errors.New("missing jti in token")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("invalid token expiration")
	}

	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl <= 0 {
		return nil
	}

	return s.store.Set(ctx, repository.BlacklistPrefix+jti, true, ttl)
}

// Session возвращает профиль по токену либо ошибку; обработчик переводит
// любую ошибку в {"session": null}.
func (s *AuthService) Session(ctx context.Context, tokenString string) (*models.User, error) {
	token, err := s.jwtUtil.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	if jti, _ := claims["jti"].(string); jti != "" {
		revoked, err := s.store.Exists(ctx, repository.BlacklistPrefix+jti)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, errors.New("token revoked")
		}
	}

	userID, _ := claims["user_id"].(string)
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Blocked {
		return nil, models.ErrBlocked
	}
	return user, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile сливает частичное обновление в профиль; роль и блокировка
// отсюда недоступны.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, name, phone *string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != nil && *name != "" {
		user.Name = *name
	}
	if phone != nil {
		user.Phone = *phone
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
