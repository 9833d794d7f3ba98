package services

import (
	"context"
	"time"

	"repair-app/internal/models"
)

// UserService — админские операции над пользователями.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) ListUsers(ctx context.Context, actor Actor) ([]models.User, error) {
	if !Can(actor.Role, UserManage) {
		return nil, models.ErrForbidden
	}
	return s.repo.GetAll(ctx)
}

func (s *UserService) ListMasters(ctx context.Context, actor Actor) ([]models.User, error) {
	if !Can(actor.Role, UserManage) {
		return nil, models.ErrForbidden
	}
	return s.repo.GetByRole(ctx, models.RoleMaster)
}

// SetBlocked включает/выключает блокировку. Админов блокировать нельзя.
// Тикеты и комментарии заблокированного не трогаются.
func (s *UserService) SetBlocked(ctx context.Context, actor Actor, userID string, blocked bool) (*models.User, error) {
	if !Can(actor.Role, UserManage) {
		return nil, models.ErrForbidden
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == models.RoleAdmin {
		return nil, models.ErrForbidden
	}

	user.Blocked = blocked
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
